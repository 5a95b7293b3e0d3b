package repo

import (
	"gorm.io/gorm"
)

// CounterRepository mints monotonically increasing ids from named counters.
type CounterRepository struct{ db *gorm.DB }

func NewCounterRepository(db *gorm.DB) *CounterRepository { return &CounterRepository{db: db} }

// Next increments the named counter and returns the new value, creating the
// counter at 1 on first use. The increment must stay a single atomic
// store-side operation: two concurrent callers may never see the same value,
// so this is never done as a separate read followed by a write.
func (r *CounterRepository) Next(name string) (int64, error) {
	var value int64
	switch r.db.Dialector.Name() {
	case "mysql":
		// LAST_INSERT_ID(expr) is connection-scoped; the transaction pins
		// one connection so the SELECT reads our own increment.
		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(
				"INSERT INTO counters (name, value) VALUES (?, LAST_INSERT_ID(1)) ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + 1)",
				name,
			).Error; err != nil {
				return err
			}
			return tx.Raw("SELECT LAST_INSERT_ID()").Scan(&value).Error
		})
		return value, err
	default:
		err := r.db.Raw(
			"INSERT INTO counters (name, value) VALUES (?, 1) ON CONFLICT(name) DO UPDATE SET value = value + 1 RETURNING value",
			name,
		).Scan(&value).Error
		return value, err
	}
}
