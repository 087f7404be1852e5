package persistence

import (
	"testing"
	"time"

	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the full schema migrated.
// Each call returns an isolated database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.FinancialAccountModel{},
		&models.InstallmentModel{},
		&models.PaymentModel{},
		&models.BankAccountModel{},
		&models.MovementModel{},
		&models.BudgetModel{},
		&models.BudgetItemModel{},
		&models.ContactModel{},
		&models.CategoryModel{},
		&models.DepartmentModel{},
	)
	require.NoError(t, err)

	return db
}

// dateUTC builds a UTC midnight timestamp for test fixtures
func dateUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
