package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IntakeMode selects the copy, subjects and success message used by the
// contact/application form.
type IntakeMode string

const (
	// ModeContact is the default general-enquiry mode.
	ModeContact IntakeMode = "contact"
	// ModeVolunteer is the volunteer-application mode.
	ModeVolunteer IntakeMode = "benevole"
	// ModeMembership is the membership-application mode.
	ModeMembership IntakeMode = "adhesion"
)

// ModeProfile carries the per-mode copy and subject builders.
type ModeProfile struct {
	Title          string
	Intro          string
	Placeholder    string
	AckSubject     string
	SuccessMessage string
	orgSubject     string
}

// OrgSubject builds the organization-facing subject for a submitter name.
func (p ModeProfile) OrgSubject(fullName string) string {
	return fmt.Sprintf(p.orgSubject, fullName)
}

var modeProfiles = map[IntakeMode]ModeProfile{
	ModeContact: {
		Title:          "Nous contacter",
		Intro:          "Une question sur l'association, nos animaux ou nos interventions ? Écrivez-nous.",
		Placeholder:    "Votre message…",
		orgSubject:     "Message via le site — %s",
		AckSubject:     "Nous avons bien reçu votre message",
		SuccessMessage: "Merci ! Votre message a bien été enregistré. Nous vous répondrons au plus vite.",
	},
	ModeVolunteer: {
		Title:          "Devenir bénévole",
		Intro:          "Envie de donner de votre temps auprès de nos animaux ? Présentez-vous, nous vous recontactons.",
		Placeholder:    "Parlez-nous de vous et de vos disponibilités…",
		orgSubject:     "Candidature bénévole — %s",
		AckSubject:     "Votre candidature de bénévole a bien été reçue",
		SuccessMessage: "Merci ! Votre candidature a bien été enregistrée. Nous revenons vers vous très vite.",
	},
	ModeMembership: {
		Title:          "Adhérer à l'association",
		Intro:          "Soutenez nos actions de médiation animale en devenant adhérent.",
		Placeholder:    "Dites-nous en quelques mots pourquoi vous souhaitez adhérer…",
		orgSubject:     "Demande d'adhésion — %s",
		AckSubject:     "Votre demande d'adhésion a bien été reçue",
		SuccessMessage: "Merci ! Votre demande d'adhésion a bien été enregistrée. Nous vous répondrons au plus vite.",
	},
}

var modeAliases = map[string]IntakeMode{
	"benevole":   ModeVolunteer,
	"benevolat":  ModeVolunteer,
	"volunteer":  ModeVolunteer,
	"volontaire": ModeVolunteer,
	"adhesion":   ModeMembership,
	"adherer":    ModeMembership,
	"adherent":   ModeMembership,
	"membership": ModeMembership,
	"member":     ModeMembership,
	"join":       ModeMembership,
}

// ResolveIntakeMode maps the free-form "type" request parameter to a mode.
// Matching is case- and diacritic-insensitive; unknown or empty input resolves
// to the contact mode.
func ResolveIntakeMode(raw string) IntakeMode {
	folded := foldModeKey(raw)
	if mode, ok := modeAliases[folded]; ok {
		return mode
	}
	return ModeContact
}

// Profile returns the copy associated with the mode. Unknown values fall back
// to the contact profile so a profile is always available.
func (m IntakeMode) Profile() ModeProfile {
	if profile, ok := modeProfiles[m]; ok {
		return profile
	}
	return modeProfiles[ModeContact]
}

func foldModeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	decomposed := norm.NFD.String(lowered)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
