package models

// Customer is a registered traveler. Code is the login identifier and is
// unique; Email is optional but unique when present.
type Customer struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	FullName     string `json:"full_name"`
	Email        string `json:"email,omitempty"`
	Age          int    `json:"age,omitempty"`
	PasswordHash string `json:"-"`
}

// CustomerInput carries the writable customer fields from the HTTP layer.
type CustomerInput struct {
	Code     string `json:"code"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}
