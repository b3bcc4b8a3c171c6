package domain

// StatusCode identifies one of the seeded account statuses.
type StatusCode int16

const (
	StatusOpen   StatusCode = 1
	StatusClosed StatusCode = 2
)

// String returns the display name matching the seeded status rows.
func (s StatusCode) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Status represents a row of the fixed status enumeration. The table is seeded
// at migration time with exactly Open and Closed and is not user-editable.
type Status struct {
	Code StatusCode `json:"code"`
	Name string     `json:"name"`
}
