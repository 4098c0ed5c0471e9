package dto

// AdminLoginDTO is the request body for admin login.
type AdminLoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponseDTO is the login response.
type AdminLoginResponseDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
