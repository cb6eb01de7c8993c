package dto

type RegisterRequest struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role,omitempty" form:"role"`
	Profile  string `json:"profile,omitempty" form:"profile"`
	Branch   string `json:"branch,omitempty" form:"branch"`

	Todo []TodoInput `json:"todo,omitempty"`
}

type TodoInput struct {
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
	Star   string `json:"star,omitempty"`
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty" form:"fullName"`
}

// AuthResponse carries the claims resolved from a verified session token.
type AuthResponse struct {
	UserID uint    `json:"user_id"`
	Email  string  `json:"email"`
	Role   string  `json:"role,omitempty"`
	Iat    float64 `json:"iat"`
	Expiry float64 `json:"expiry"`
}
