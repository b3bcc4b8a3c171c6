package domain

// UserLogin represents an application login with a bcrypt password hash.
// It is independent of the banking entities and used only to establish a
// session.
type UserLogin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
