package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"notifications", "tickets", "renewal_requests", "officer_documents", "officers", "users"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		accounts := []struct {
			Username string
			First    string
			Last     string
			Email    string
			Role     string
		}{
			{"admin", "System", "Admin", "admin@example.com", "ADMIN"},
			{"hr", "Helen", "Reyes", "hr@example.com", "HR"},
			{"manager", "Moses", "Kato", "manager@example.com", "MANAGER"},
			{"approver", "Agnes", "Nambi", "approver@example.com", "APPROVER"},
		}

		for _, a := range accounts {
			if userExists(db, a.Username) {
				fmt.Printf("user %s already exists, skipping\n", a.Username)
				continue
			}
			if _, err := db.Exec(
				`INSERT INTO users (username, first_name, last_name, email, role, password_hash, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, true, now(), now())`,
				a.Username, a.First, a.Last, a.Email, a.Role, string(hash)); err != nil {
				log.Fatalf("failed to insert user %s: %v", a.Username, err)
			}
			fmt.Println("Seeded user:", a.Username)
		}

		officers := []struct {
			Username string
			First    string
			Last     string
			Email    string
			Position string
			EndDate  time.Time
		}{
			{"jokello", "James", "Okello", "jokello@example.com", "Lecturer", time.Now().AddDate(1, 0, 0)},
			{"snakimuli", "Sarah", "Nakimuli", "snakimuli@example.com", "Senior Lecturer", time.Now().AddDate(0, 0, 21)},
			{"pmugisha", "Peter", "Mugisha", "pmugisha@example.com", "Research Fellow", time.Now().AddDate(0, -2, 0)},
		}

		for _, o := range officers {
			if userExists(db, o.Username) {
				fmt.Printf("officer %s already exists, skipping\n", o.Username)
				continue
			}
			var userID int64
			if err := db.QueryRow(
				`INSERT INTO users (username, first_name, last_name, email, role, password_hash, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, 'OFFICER', $5, true, now(), now()) RETURNING id`,
				o.Username, o.First, o.Last, o.Email, string(hash)).Scan(&userID); err != nil {
				log.Fatalf("failed to insert officer account %s: %v", o.Username, err)
			}
			if _, err := db.Exec(
				`INSERT INTO officers (user_id, first_name, last_name, position, contract_end_date, compliance_status, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, true, now(), now())`,
				userID, o.First, o.Last, o.Position, o.EndDate); err != nil {
				log.Fatalf("failed to insert officer record %s: %v", o.Username, err)
			}
			fmt.Println("Seeded officer:", o.Username)
		}

		fmt.Println("Database seeded successfully")
	},
}

func userExists(db *sqlx.DB, username string) bool {
	var exists int
	err := db.QueryRow("SELECT 1 FROM users WHERE username = $1", username).Scan(&exists)
	return err == nil
}
