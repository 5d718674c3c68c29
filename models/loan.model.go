package models

// LoanStatusPending is the only status value the dashboard inspects.
const LoanStatusPending = "Pending"

// Loan is one entry of the bankLoans list; populated externally, read-only
// here.
type Loan struct {
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}
