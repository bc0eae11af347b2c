package database

import (
	"fmt"
	"testing"

	"tradebot365-admin/internal/config"
	"tradebot365-admin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"account_records",
	"audit_logs",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestRecord inserts a flat account row with sensible defaults for the fields left empty
func CreateTestRecord(t *testing.T, db *DB, record models.FlatAccountRecord) *models.FlatAccountRecord {
	t.Helper()

	if record.CSPAccountID == "" {
		record.CSPAccountID = "csp-" + record.UserID
	}
	if record.TradingAccountID == "" {
		record.TradingAccountID = fmt.Sprintf("ta-%s-%s", record.UserID, record.TradingAccountNumber)
	}
	if record.Balance.IsZero() {
		record.Balance = decimal.NewFromInt(1000)
	}

	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}

	return &record
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
