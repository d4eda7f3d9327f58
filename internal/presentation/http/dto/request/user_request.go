package request

// CreateUserRequest represents a user registration request
type CreateUserRequest struct {
	UserID string `json:"userId" binding:"required,max=100"`
	Name   string `json:"name" binding:"required,max=255"`
	Site   string `json:"site" binding:"max=255"`
	Phone  string `json:"phone" binding:"max=50"`
}

// UpdateUserRequest represents a user profile update
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Site  *string `json:"site" binding:"omitempty,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}
