package employeeController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fincore/middleware"
	"fincore/models"
	"fincore/store"
)

// RecentTransactions returns the last n entries of the list, most recent
// first by list position. There is no sorting by timestamp; position in the
// stored list is the only ordering.
func RecentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	if n > len(transactions) {
		n = len(transactions)
	}
	recent := make([]models.Transaction, 0, n)
	for i := len(transactions) - 1; i >= len(transactions)-n; i-- {
		recent = append(recent, transactions[i])
	}
	return recent
}

// CountPendingLoans counts loans whose status is exactly "Pending".
func CountPendingLoans(loans []models.Loan) int {
	count := 0
	for _, l := range loans {
		if l.Status == models.LoanStatusPending {
			count++
		}
	}
	return count
}

// SummarizeTransactions returns the Credit and Debit counts for the summary
// chart.
func SummarizeTransactions(transactions []models.Transaction) (credits, debits int) {
	for _, t := range transactions {
		switch t.TransactionType {
		case models.TransactionCredit:
			credits++
		case models.TransactionDebit:
			debits++
		}
	}
	return credits, debits
}

// Dashboard aggregates the stored lists for the employee view. Unreadable
// lists degrade to zero counts; the summary chart is a soft concern and is
// simply omitted when the transaction data cannot be read.
func Dashboard(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("sessionId").(string)

	var customers []models.Customer
	if err := store.GetList(store.Default, store.KeyCustomers, &customers); err != nil {
		log.Printf("Failed to load customer list: %v", err)
	}

	var loans []models.Loan
	if err := store.GetList(store.Default, store.KeyLoans, &loans); err != nil {
		log.Printf("Failed to load loan list: %v", err)
	}

	var transactions []models.Transaction
	txnErr := store.GetList(store.Default, store.KeyTransactions, &transactions)
	if txnErr != nil {
		log.Printf("Failed to load transaction list: %v", txnErr)
	}

	data := fiber.Map{
		"employeeId":         employeeID,
		"totalCustomers":     len(customers),
		"totalTransactions":  len(transactions),
		"pendingLoans":       CountPendingLoans(loans),
		"recentTransactions": RecentTransactions(transactions, 5),
	}

	if txnErr == nil {
		credits, debits := SummarizeTransactions(transactions)
		data["chart"] = fiber.Map{
			"credits": credits,
			"debits":  debits,
		}
	} else {
		log.Println("Transaction data unavailable. Chart will not be displayed.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard loaded.", data)
}
