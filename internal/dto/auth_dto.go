package dto

type SignupRequest struct {
	Name         string  `json:"name"          validate:"required,min=2"`
	Email        string  `json:"email"         validate:"required,email"`
	Password     string  `json:"password"      validate:"required,min=8"`
	Role         string  `json:"role"          validate:"required,oneof=owner staff"`
	BusinessName *string `json:"business_name" validate:"omitempty,min=2"`
}

type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	BusinessName *string `json:"business_name,omitempty"`
	Active       bool    `json:"active"`
}

type SigninResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// SignupResponse reports whether the account is immediately usable (owner)
// or waiting on approval (staff).
type SignupResponse struct {
	User            UserResponse `json:"user"`
	PendingApproval bool         `json:"pending_approval"`
}
