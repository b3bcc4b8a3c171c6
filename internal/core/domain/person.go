package domain

// Person represents an individual client who may own zero or more accounts.
type Person struct {
	Code     int64  `json:"code"`
	Name     string `json:"name"`    // optional
	Surname  string `json:"surname"` // optional
	IDNumber string `json:"idNumber"`
}
