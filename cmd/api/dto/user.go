package dto

// SigninRequestDTO is the body of POST /api/v1/auth/signin.
type SigninRequestDTO struct {
	Email   string `json:"email" binding:"required,email" example:"user@example.com"`
	Name    string `json:"name" binding:"required" example:"Jane Viewer"`
	Picture string `json:"picture" example:"https://example.com/avatar.png"`
}

// SigninResponseDTO is the response of POST /api/v1/auth/signin.
type SigninResponseDTO struct {
	Token string         `json:"token"`
	User  UserProfileDTO `json:"user"`
}

// UserProfileDTO is the response schema of GET /api/v1/users/profile.
type UserProfileDTO struct {
	Email     string `json:"email" example:"user@example.com"`
	Name      string `json:"name" example:"Jane Viewer"`
	Picture   string `json:"picture" example:"https://example.com/avatar.png"`
	CreatedAt string `json:"created_at" example:"2025-01-01T12:00:00Z"`
}
