package types

import (
	"github.com/go-playground/validator/v10"
)

// SaveResumeRequest is the body for creating or updating a stored resume.
// ResumeID is empty for a first save; when set, the save is an update scoped
// to (resume id, owning user) and never creates a new record.
type SaveResumeRequest struct {
	ResumeID       string     `json:"resume_id,omitempty" validate:"omitempty,uuid4"`
	Name           string     `json:"name" validate:"required,min=1,max=200"`
	TemplateKey    string     `json:"template_key" validate:"required,oneof=modern classic minimal creative"`
	ResumeData     ResumeData `json:"resume_data"`
	SectionOrder   []string   `json:"section_order,omitempty"`
	HiddenSections []string   `json:"hidden_sections,omitempty"`
}

// SaveDraftRequest overwrites the caller's unsaved in-progress resume.
type SaveDraftRequest struct {
	ResumeData     ResumeData `json:"resume_data"`
	TemplateKey    string     `json:"template_key,omitempty" validate:"omitempty,oneof=modern classic minimal creative"`
	SectionOrder   []string   `json:"section_order,omitempty"`
	HiddenSections []string   `json:"hidden_sections,omitempty"`
}

// PreviewRequest asks for a rendering without persisting anything.
type PreviewRequest struct {
	TemplateKey    string     `json:"template_key" validate:"required,oneof=modern classic minimal creative"`
	ResumeData     ResumeData `json:"resume_data"`
	SectionOrder   []string   `json:"section_order,omitempty"`
	HiddenSections []string   `json:"hidden_sections,omitempty"`
}

// EnhanceRequest is the body for the AI text-enhancement endpoint.
type EnhanceRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=4000"`
}

// EnhanceResponse carries the AI suggestion.
type EnhanceResponse struct {
	Suggestion string `json:"suggestion"`
}

// CreateOrderRequest is the body for creating a payment order.
type CreateOrderRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,len=3"`
	PlanType string `json:"plan_type" validate:"required,oneof=monthly yearly lifetime"`
}

// CreateOrderResponse carries the gateway order identifier consumed by the
// checkout widget.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentRequest carries the checkout result for server-side
// signature verification.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	PlanType  string `json:"plan_type" validate:"required,oneof=monthly yearly lifetime"`
}

// AssignRoleRequest is the body for the admin role-grant endpoint.
type AssignRoleRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Role   string `json:"role" validate:"required,oneof=user moderator admin"`
}

// GrantPremiumAllRequest gates the irreversible bulk grant behind an explicit
// confirmation flag.
type GrantPremiumAllRequest struct {
	Confirm bool `json:"confirm"`
}

// UpdateSettingRequest is the body for writing a site-wide setting.
type UpdateSettingRequest struct {
	Value any `json:"value"`
}

// Validate validates the SaveResumeRequest using the validator.
func (r *SaveResumeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the SaveDraftRequest using the validator.
func (r *SaveDraftRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the PreviewRequest using the validator.
func (r *PreviewRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the EnhanceRequest using the validator.
func (r *EnhanceRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CreateOrderRequest using the validator.
func (r *CreateOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the VerifyPaymentRequest using the validator.
func (r *VerifyPaymentRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the AssignRoleRequest using the validator.
func (r *AssignRoleRequest) Validate() error {
	return validator.New().Struct(r)
}
