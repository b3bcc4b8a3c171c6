package models

// Person represents a row in the persons table.
// Name and surname are nullable; repositories map NULL to the empty string.
type Person struct {
	Code     int64  `db:"code"`
	Name     string `db:"name"`
	Surname  string `db:"surname"`
	IDNumber string `db:"id_number"`
}
