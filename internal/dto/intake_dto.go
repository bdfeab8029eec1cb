package dto

// IntakeRequest defines the expected payload for the contact/application form.
// The Website field is the honeypot: hidden in the rendered form, it must stay
// empty. RenderedAt carries the epoch seconds at which the form was rendered.
type IntakeRequest struct {
	FirstName  string `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" form:"last_name" validate:"required,max=100"`
	Email      string `json:"email" form:"email" validate:"required,email,max=160"`
	Phone      string `json:"phone" form:"phone" validate:"omitempty,max=32"`
	Message    string `json:"message" form:"message" validate:"required,min=10,max=4000"`
	Website    string `json:"website" form:"website"`
	RenderedAt int64  `json:"ts" form:"ts"`
	Mode       string `json:"-" form:"-"`
	ClientIP   string `json:"-" form:"-"`
}

// IntakeValues echoes the harmless submitted fields back to the caller so the
// form can be redisplayed without data loss.
type IntakeValues struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// IntakeFormResponse describes the GET payload used to render the form.
type IntakeFormResponse struct {
	Mode        string `json:"mode"`
	Title       string `json:"title"`
	Intro       string `json:"intro"`
	Placeholder string `json:"placeholder"`
	RenderedAt  int64  `json:"ts"`
}

// IntakeReceipt is returned after a fully processed submission.
type IntakeReceipt struct {
	RequestID      string `json:"request_id"`
	Mode           string `json:"mode"`
	SuccessMessage string `json:"success_message"`
	RedirectTo     string `json:"redirect_to"`
}
