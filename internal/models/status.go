package models

// Status represents a row in the status table. The table holds the fixed
// Open/Closed enumeration seeded by the initial migration.
type Status struct {
	Code int16  `db:"code"`
	Name string `db:"name"`
}
