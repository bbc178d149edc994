package login

import "github.com/m04kA/SMC-FleetService/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse вложенная модель пользователя в ответе
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// FromDomainUser конвертирует пользователя в HTTP response
func FromDomainUser(user *domain.User) *LoginResponse {
	return &LoginResponse{
		Message: "Login successful",
		User: &UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}
}
