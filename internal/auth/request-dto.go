package auth

// login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// registration request payload; role defaults to "USER", publishers may
// register as an organization for the reduced commission rate
type RegisterRequest struct {
	FirstName        string `json:"first_name" validate:"required,min=2,max=100"`
	LastName         string `json:"last_name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	Role             string `json:"role,omitempty"`
	IsOrganization   bool   `json:"is_organization,omitempty"`
	OrganizationName string `json:"organization_name,omitempty" validate:"omitempty,min=2,max=255"`
	CountryCode      string `json:"country_code,omitempty" validate:"omitempty,len=2"`
}

// represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// represents change password request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// represents logout request
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
