package store

import "encoding/json"

// Keys used by every view. Lists are JSON-encoded arrays; session entries
// are bare strings.
const (
	KeyCustomers    = "bankCustomers"
	KeyEmployees    = "employees"
	KeyTransactions = "bankTransactions"
	KeyLoans        = "bankLoans"

	KeyCustomerID       = "customerId"
	KeyCustomerLoggedIn = "isCustomerLoggedIn"
	KeyEmployeeID       = "employeeId"
	KeyEmployeeLoggedIn = "isEmployeeLoggedIn"
)

// Store is the single access point for the shared key-value state. A missing
// key reads as "". The store does not serialize read-modify-write cycles on
// a list; concurrent writers of the same key can race.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Default is the process-wide store. database.ConnectDb assigns the
// gorm-backed store here; tests swap in a MemStore.
var Default Store = NewMemStore()

// GetList decodes the JSON array stored under key into out. A missing or
// empty value decodes as an empty list; a corrupt value returns the
// unmarshal error so the caller can log and degrade.
func GetList(s Store, key string, out interface{}) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if raw == "" {
		raw = "[]"
	}
	return json.Unmarshal([]byte(raw), out)
}

// SetList encodes items as a JSON array under key.
func SetList(s Store, key string, items interface{}) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
