package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"fincore/config"
	"fincore/database"
	"fincore/models"
	"fincore/store"
)

// Seeds the externally-produced lists (customers, transactions, loans) and
// prints a few randomized registration payloads. This is the only home of
// the dev-convenience test data; the serving path never touches it.

var firstNames = []string{"Vijay", "Nirav", "Mehul", "Harshad", "Ketan", "Ramalinga", "Gali", "Janardhan", "Mohammad", "Mansoor", "Parthasarathy", "Rana", "Subrata"}
var lastNames = []string{"Mallya", "Modi", "Choksi", "Mehta", "Parekh", "Raju", "Reddy", "Khan", "Kapoor", "Roy"}
var roles = []string{"Teller", "Manager", "Auditor", "Clerk"}
var addresses = []string{
	"123 MG Road, Bangalore",
	"456 Park Street, Kolkata",
	"789 Marine Drive, Mumbai",
	"321 Connaught Place, Delhi",
	"654 Anna Salai, Chennai",
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	customers := seedCustomers(rng)
	transactions := seedTransactions(rng, customers)
	loans := seedLoans(rng, customers)

	if err := store.SetList(store.Default, store.KeyCustomers, customers); err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}
	if err := store.SetList(store.Default, store.KeyTransactions, transactions); err != nil {
		log.Fatalf("Failed to seed transactions: %v", err)
	}
	if err := store.SetList(store.Default, store.KeyLoans, loans); err != nil {
		log.Fatalf("Failed to seed loans: %v", err)
	}

	log.Printf("Seeded %d customers, %d transactions, %d loans", len(customers), len(transactions), len(loans))

	printSampleRegistrations(rng, 3)
}

func seedCustomers(rng *rand.Rand) []models.Customer {
	customers := make([]models.Customer, 0, 10)
	for i := 0; i < 10; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		customers = append(customers, models.Customer{
			SSN:           fmt.Sprintf("%d", rng.Intn(9000000)+1000000),
			Name:          first + " " + last,
			Balance:       float64(rng.Intn(500000)) + 0.50,
			AccountNumber: uuid.NewString(),
			Email:         fmt.Sprintf("%s.%s@fincorebms.com", strings.ToLower(first), strings.ToLower(last)),
		})
	}
	return customers
}

func seedTransactions(rng *rand.Rand, customers []models.Customer) []models.Transaction {
	types := []string{models.TransactionCredit, models.TransactionDebit}
	transactions := make([]models.Transaction, 0, 20)
	for i := 0; i < 20; i++ {
		customer := customers[rng.Intn(len(customers))]
		date := time.Now().AddDate(0, 0, -rng.Intn(90)).Format("2006-01-02")
		transactions = append(transactions, models.Transaction{
			CustomerName:      customer.Name,
			TransactionType:   types[rng.Intn(len(types))],
			TransactionAmount: float64(rng.Intn(100000)) + 0.25,
			TransactionDate:   date,
		})
	}
	return transactions
}

func seedLoans(rng *rand.Rand, customers []models.Customer) []models.Loan {
	statuses := []string{models.LoanStatusPending, "Approved", "Rejected"}
	loans := make([]models.Loan, 0, 6)
	for i := 0; i < 6; i++ {
		customer := customers[rng.Intn(len(customers))]
		loans = append(loans, models.Loan{
			CustomerName: customer.Name,
			Amount:       float64(rng.Intn(1000000)),
			Status:       statuses[rng.Intn(len(statuses))],
		})
	}
	return loans
}

// printSampleRegistrations writes ready-to-post registration payloads to
// stdout for manual testing against the register endpoint.
func printSampleRegistrations(rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		dob := time.Now().AddDate(-25, 0, 0).Format("2006-01-02")

		payload := map[string]string{
			"firstName":       first,
			"lastName":        last,
			"email":           fmt.Sprintf("%s.%s@fincorebms.com", strings.ToLower(first), strings.ToLower(last)),
			"password":        strings.ToLower(first) + "@ABC1234",
			"confirmPassword": strings.ToLower(first) + "@ABC1234",
			"address":         addresses[rng.Intn(len(addresses))],
			"contactNumber":   fmt.Sprintf("%d", rng.Int63n(9000000000)+1000000000),
			"gender":          []string{"Male", "Female", "Other"}[rng.Intn(3)],
			"empDob":          dob,
			"emp_aadhaar":     fmt.Sprintf("%d", rng.Int63n(900000000000)+100000000000),
			"emp_pan":         fmt.Sprintf("ABCDE%dF", rng.Intn(9000)+1000),
			"emp_role":        roles[rng.Intn(len(roles))],
		}

		raw, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode sample payload: %v", err)
		}
		fmt.Println(string(raw))
	}
}
