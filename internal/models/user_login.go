package models

// UserLogin represents a row in the user_logins table.
type UserLogin struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}
