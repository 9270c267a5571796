package dto

// SessionRequest records the active identity. There is no authentication;
// the browser announces who is using it.
type SessionRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1"`
	Role string `json:"role" validate:"required,oneof=teacher student"`
}

// SessionResponse reports the active identity and presentation role.
type SessionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ViewRole string `json:"viewRole"`
}
