package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal/notification"
	notificationpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/notification/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	officerpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/officer/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers",
	Long:  `Start and manage background workers like the contract expiry scanner.`,
}

var contractWorkerCmd = &cobra.Command{
	Use:   "contracts",
	Short: "Start the contract expiry scanner",
	Long:  `Periodically scan officer contracts and notify officers whose contract is expiring soon.`,
	Run: func(cmd *cobra.Command, args []string) {
		startContractWorker()
	},
}

var scanInterval time.Duration

func startContractWorker() {
	config, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize gorm: %v\n", err)
		os.Exit(1)
	}

	officerRepo := officerpostgres.NewOfficerRepository(gormDB)
	notificationService := notification.NewService(notificationpostgres.NewNotificationRepository(gormDB), log)

	log.Info("contract expiry scanner started", "interval", scanInterval)

	scan := func() {
		officers, err := officerRepo.GetAll()
		if err != nil {
			log.Error("contract scan failed", "error", err)
			return
		}

		now := time.Now()
		notified := 0
		for _, o := range officers {
			if officer.ContractStatus(o.ContractEndDate, now) != officer.ContractExpiringSoon {
				continue
			}
			if alreadyNotified(notificationService, o.UserID) {
				continue
			}
			message := fmt.Sprintf("Your contract ends on %s. Please contact HR about renewal.",
				o.ContractEndDate.Format("2006-01-02"))
			if _, err := notificationService.Notify(o.UserID, "contract_expiring", message); err != nil {
				log.Error("failed to notify officer", "officer_id", o.ID, "error", err)
				continue
			}
			notified++
		}

		log.Info("contract scan complete", "officers", len(officers), "notified", notified)
	}

	scan()
	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			scan()
		case sig := <-sigChan:
			log.Info("received signal, shutting down contract scanner", "signal", sig)
			return
		}
	}
}

// alreadyNotified keeps the scanner from piling up duplicate reminders while
// an earlier one is still unread.
func alreadyNotified(svc *notification.Service, userID int64) bool {
	notices, err := svc.GetForUser(userID)
	if err != nil {
		return false
	}
	for _, n := range notices {
		if n.Type == "contract_expiring" && !n.Read {
			return true
		}
	}
	return false
}

func init() {
	contractWorkerCmd.Flags().DurationVar(&scanInterval, "interval", 24*time.Hour, "How often to scan contracts")

	workerCmd.AddCommand(contractWorkerCmd)

	rootCmd.AddCommand(workerCmd)
}
