package models

// Counter is a named integer sequence used to mint entity identifiers.
// Rows are created implicitly on first allocation and never deleted.
type Counter struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null;default:0"`
}
