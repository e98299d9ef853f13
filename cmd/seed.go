package cmd

import (
	"fmt"
	"log"
	"time"

	"invoicing-backend/internal/config"
	"invoicing-backend/internal/db"
	"invoicing-backend/internal/model"
	"invoicing-backend/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo customers, users and invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sqlDB, err := db.NewMySQLConnection(cfg.MySQL.DSN, db.MySQLOpts{
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.MySQL.ConnMaxIdleTime,
			PingTimeout:     cfg.MySQL.PingTimeout,
		})
		if err != nil {
			return fmt.Errorf("mysql connect: %w", err)
		}
		defer sqlDB.Close()

		log.Println(">> Seeding demo data...")

		customerIDs, err := seedCustomers(sqlDB)
		if err != nil {
			return err
		}
		if err := seedUsers(sqlDB); err != nil {
			return err
		}
		if err := seedInvoices(sqlDB, customerIDs); err != nil {
			return err
		}

		log.Println(">> Seed completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// seedCustomers upserts deterministic demo customers keyed by email (UNIQUE)
// and returns their ids.
func seedCustomers(dbx *sqlx.DB) ([]string, error) {
	customers := []model.Customer{
		{Name: "Acme Corp", Email: "billing@acme.example"},
		{Name: "Foobar LLC", Email: "accounts@foobar.example"},
		{Name: "Globex Industries", Email: "finance@globex.example"},
		{Name: "Initech", Email: "invoices@initech.example"},
		{Name: "Umbrella Supplies", Email: "pay@umbrella.example"},
	}

	const q = `
INSERT INTO customers
    (id, name, email, created_at, updated_at)
VALUES
    (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
    name       = VALUES(name),
    updated_at = VALUES(updated_at)
`
	tx, err := dbx.Beginx()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()
	for _, c := range customers {
		if _, err := tx.Exec(q, util.New(), c.Name, c.Email, now, now); err != nil {
			return nil, fmt.Errorf("insert customer %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit customers: %w", err)
	}

	// upsert may have kept pre-existing rows; read the real ids back
	var existing []string
	if err := dbx.Select(&existing, `SELECT id FROM customers ORDER BY name ASC`); err != nil {
		return nil, fmt.Errorf("read customer ids: %w", err)
	}
	return existing, nil
}

// seedUsers creates one demo login (demo@invoices.local / 123456).
func seedUsers(dbx *sqlx.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	const q = `
INSERT INTO users
    (id, name, email, password, created_at, updated_at)
VALUES
    (?, ?, ?, ?, NOW(), NOW())
ON DUPLICATE KEY UPDATE
    updated_at = NOW()
`
	if _, err := dbx.Exec(q, util.New(), "Demo User", "demo@invoices.local", string(hashed)); err != nil {
		return fmt.Errorf("insert demo user: %w", err)
	}
	return nil
}

// seedInvoices inserts a spread of pending/paid invoices across customers.
func seedInvoices(dbx *sqlx.DB, customerIDs []string) error {
	if len(customerIDs) == 0 {
		return nil
	}

	amounts := []int64{1050, 66800, 34577, 8945, 50000, 120300, 4400, 32545}
	const q = `
INSERT INTO invoices
    (id, customer_id, amount, status, date, created_at, updated_at)
VALUES
    (?, ?, ?, ?, ?, NOW(), NOW())
`
	tx, err := dbx.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, amount := range amounts {
		status := model.StatusPending
		if i%2 == 0 {
			status = model.StatusPaid
		}
		date := time.Now().AddDate(0, 0, -i*7)
		customerID := customerIDs[i%len(customerIDs)]
		if _, err := tx.Exec(q, util.New(), customerID, amount, status.String(), date); err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit invoices: %w", err)
	}
	return nil
}
