package models

// StoreEntry is one row of the key-value store table.
type StoreEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
