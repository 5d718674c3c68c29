package models

// Customer is one entry of the bankCustomers list. The ssn field is the
// identifier customers log in with; lookup takes the first match, nothing
// enforces uniqueness.
type Customer struct {
	SSN           string  `json:"ssn"`
	Name          string  `json:"name"`
	Balance       float64 `json:"balance"`
	AccountNumber string  `json:"accountNumber"`
	Email         string  `json:"email"`
}
