package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,username"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is returned by both register and login. The user
// projection never includes the password hash.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
