package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"tradebot365-admin/internal/config"
	"tradebot365-admin/internal/database"
	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"
	"tradebot365-admin/internal/services"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	down := flag.Int("down", 0, "roll back the last N migrations instead of migrating up")
	status := flag.Bool("status", false, "print the migration version and exit")
	seedSQL := flag.Bool("seed-sql", false, "run the SQL files under db/seeds after migrating")
	mockUsers := flag.Int("mock-users", 0, "generate and import mock account records for N users")
	mockSeed := flag.Uint64("mock-seed", 0, "seed of the mock generator (0 picks a random one)")
	purgeAudit := flag.Duration("purge-audit-older-than", 0, "delete audit log entries older than this age")
	migrationsDir := flag.String("migrations", "db/migrations", "migrations directory")
	seedsDir := flag.String("seeds", "db/seeds", "SQL seeds directory")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fatal("Failed to open database", err)
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB,
		database.WithMigrationsPath(*migrationsDir),
		database.WithSeedsPath(*seedsDir),
	)

	if err := runner.WaitForDatabase(ctx); err != nil {
		fatal("Database not reachable", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			fatal("Failed to read migration status", err)
		}
		slog.Info("Migration status", "version", version, "dirty", dirty)
		return
	}

	if *down > 0 {
		if err := runner.RollbackMigrations(*down); err != nil {
			fatal("Rollback failed", err)
		}
		return
	}

	if err := runner.RunMigrations(); err != nil {
		fatal("Migration failed", err)
	}

	if *seedSQL {
		if err := runner.LoadSeeds(); err != nil {
			fatal("Seeding failed", err)
		}
	}

	if *mockUsers == 0 && *purgeAudit == 0 {
		return
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		fatal("Failed to open gorm connection", err)
	}
	defer db.Close()

	if *mockUsers > 0 {
		importMockRecords(ctx, db, *mockUsers, *mockSeed)
	}

	if *purgeAudit > 0 {
		purged, err := services.NewAuditService(repositories.NewAuditLogRepository(db.DB)).PurgeOlderThan(*purgeAudit)
		if err != nil {
			fatal("Audit purge failed", err)
		}
		slog.Info("Purged audit logs", "count", purged, "older_than", *purgeAudit)
	}
}

// importMockRecords bypasses the per-request import limit of the API
func importMockRecords(ctx context.Context, db *database.DB, users int, seed uint64) {
	hierarchy := services.NewAccountHierarchyService(
		repositories.NewAccountRecordRepository(db.DB),
		nil,
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		services.NewActionLogger(slog.Default()),
		services.HierarchyConfig{},
	)

	opts := models.DefaultMockDataOptions()
	opts.Users = users
	opts.Seed = seed

	result, err := hierarchy.ImportRecords(ctx, services.NewAccountDataGenerator().GenerateRecords(opts.WithDefaults()))
	if err != nil {
		fatal("Mock import failed", err)
	}
	slog.Info("Imported mock account records", "received", result.Received, "stored", result.Stored, "hidden", result.Hidden)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
