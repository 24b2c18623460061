package dto

// ErrorResponseDTO is the common error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_token"`
}

// MessageResponseDTO is the common plain-message response shape.
type MessageResponseDTO struct {
	Message string `json:"message" example:"comment added successfully"`
}
