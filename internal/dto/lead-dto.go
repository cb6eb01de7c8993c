package dto

type LeadRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Org      string `json:"org,omitempty"`
}
