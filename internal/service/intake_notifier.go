package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/pkg/mailer"
)

//go:embed templates/*.html
var intakeTemplates embed.FS

const (
	// correlationHeader joins outgoing emails with server-side logs.
	correlationHeader = "X-Contact-Request-ID"
	maxSubjectLength  = 140
)

// Submission is the transient, validated intake payload handed to the
// notifier. It is never persisted.
type Submission struct {
	RequestID   string
	Mode        IntakeMode
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}

// FullName returns the submitter's display name.
func (s Submission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// NotifierConfig carries the addressing settings for outgoing intake emails.
type NotifierConfig struct {
	From          string
	Recipients    []string
	SubjectPrefix string
}

// IntakeNotifier renders and dispatches the organization and acknowledgment
// emails for an accepted submission.
type IntakeNotifier struct {
	sender    mailer.Sender
	cfg       NotifierConfig
	templates *template.Template
	logger    zerolog.Logger
}

// NewIntakeNotifier constructs a notifier.
func NewIntakeNotifier(sender mailer.Sender, cfg NotifierConfig, logger zerolog.Logger) (*IntakeNotifier, error) {
	templates, err := template.ParseFS(intakeTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse intake templates: %w", err)
	}

	return &IntakeNotifier{
		sender:    sender,
		cfg:       cfg,
		templates: templates,
		logger:    logger.With().Str("component", "intake_notifier").Logger(),
	}, nil
}

type intakeEmailContext struct {
	Title          string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Message        string
	RequestID      string
	SubmittedAt    string
	SuccessMessage string
}

// SendOrganization renders and dispatches the staff-facing email. A failure
// here is fatal to the submission and must be propagated.
func (n *IntakeNotifier) SendOrganization(ctx context.Context, sub Submission) error {
	profile := sub.Mode.Profile()
	htmlBody, err := n.render("intake_org_email.html", sub, profile)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		From:    n.cfg.From,
		To:      n.cfg.Recipients,
		ReplyTo: sub.Email,
		Subject: n.subject(profile.OrgSubject(sub.FullName())),
		Text:    htmlToText(htmlBody),
		HTML:    htmlBody,
		Headers: map[string]string{correlationHeader: sub.RequestID},
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("organization email failed: %w", err)
	}
	return nil
}

// SendAcknowledgment renders and dispatches the submitter-facing receipt.
func (n *IntakeNotifier) SendAcknowledgment(ctx context.Context, sub Submission) error {
	profile := sub.Mode.Profile()
	htmlBody, err := n.render("intake_ack_email.html", sub, profile)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		From:    n.cfg.From,
		To:      []string{sub.Email},
		Subject: n.subject(profile.AckSubject),
		Text:    htmlToText(htmlBody),
		HTML:    htmlBody,
		Headers: map[string]string{correlationHeader: sub.RequestID},
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("acknowledgment email failed: %w", err)
	}
	return nil
}

func (n *IntakeNotifier) render(name string, sub Submission, profile ModeProfile) (string, error) {
	var buf bytes.Buffer
	err := n.templates.ExecuteTemplate(&buf, name, intakeEmailContext{
		Title:          profile.Title,
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Message:        sub.Message,
		RequestID:      sub.RequestID,
		SubmittedAt:    sub.SubmittedAt.Format("02/01/2006 15:04"),
		SuccessMessage: profile.SuccessMessage,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (n *IntakeNotifier) subject(subject string) string {
	if n.cfg.SubjectPrefix != "" {
		subject = n.cfg.SubjectPrefix + " " + subject
	}
	return sanitizeSubject(subject)
}

// sanitizeSubject collapses the subject to a single trimmed line and caps its
// length, closing the header-injection window.
func sanitizeSubject(subject string) string {
	subject = strings.ReplaceAll(subject, "\r", " ")
	subject = strings.ReplaceAll(subject, "\n", " ")
	subject = strings.Join(strings.Fields(subject), " ")

	runes := []rune(subject)
	if len(runes) > maxSubjectLength {
		runes = runes[:maxSubjectLength]
	}
	return strings.TrimSpace(string(runes))
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// htmlToText derives the plain-text alternative from a rendered HTML body.
func htmlToText(htmlBody string) string {
	stripped := bluemonday.StripTagsPolicy().Sanitize(htmlBody)
	text := html.UnescapeString(stripped)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
