package model

// AdminUser is a stored admin credential. The password is only ever stored as
// a bcrypt hash.
type AdminUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
