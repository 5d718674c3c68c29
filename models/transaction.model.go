package models

// Transaction types as stored in the bankTransactions list.
const (
	TransactionCredit = "Credit"
	TransactionDebit  = "Debit"
)

// Transaction is one entry of the bankTransactions list. The list is
// populated externally and read-only here; its customerName is not required
// to match any customer record.
type Transaction struct {
	CustomerName      string  `json:"customerName"`
	TransactionType   string  `json:"transactionType"`
	TransactionAmount float64 `json:"transactionAmount"`
	TransactionDate   string  `json:"transactionDate"`
}
