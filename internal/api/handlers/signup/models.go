package signup

import "github.com/m04kA/SMC-FleetService/internal/domain"

// SignupRequest HTTP request model
type SignupRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse вложенная модель пользователя в ответе
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// SignupResponse HTTP response model
type SignupResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// FromDomainUser конвертирует пользователя в HTTP response
func FromDomainUser(user *domain.User) *SignupResponse {
	return &SignupResponse{
		Message: "User created successfully",
		User: &UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Age:   user.Age,
		},
	}
}
