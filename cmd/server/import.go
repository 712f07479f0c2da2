package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/humidorlog/humidor/internal/config"
	"github.com/humidorlog/humidor/internal/database"
	"github.com/humidorlog/humidor/internal/repository"
	"github.com/humidorlog/humidor/internal/services"
	"github.com/humidorlog/humidor/internal/storage"
)

type CigarImport struct {
	Name          string   `json:"name"`
	Vitola        string   `json:"vitola,omitempty"`
	Country       string   `json:"country,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	AcquiredOn    string   `json:"acquired_on,omitempty"`
	Quantity      int      `json:"quantity"`
}

var (
	importFile string
	skipZero   bool
	strictMode bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import cigars from JSON file",
	Long: `Import cigar inventory from a JSON file.

Expected JSON format:
[
  {"name": "Robusto X", "vitola": "50x124", "country": "Nicaragua", "quantity": 5},
  {"name": "Petit Corona", "purchase_price": 12.5, "acquired_on": "2024-11-02", "quantity": 2}
]

By default the import skips zero-quantity entries.
Use --strict to fail on any validation error instead.`,
	Example: `  humidor import -f cigars.json
  humidor import --file cigars.json --skip-zero=false
  humidor import -f cigars.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().BoolVar(&skipZero, "skip-zero", true, "Skip cigars with zero quantity")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on any validation error")
	importCmd.MarkFlagRequired("file")
}

func runImport() error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var cigars []CigarImport
	if err := json.Unmarshal(data, &cigars); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	cigarRepo := repository.NewCigarRepository(db)
	tastingRepo := repository.NewTastingRepository(db)
	images, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to set up local image store: %w", err)
	}
	cigarService := services.NewCigarService(cigarRepo, tastingRepo, images, db)

	log.Infof("Starting import of %d cigars from %s", len(cigars), importFile)

	imported := 0
	skipped := 0

	for _, entry := range cigars {
		if err := validateAndImportCigar(entry, cigarService); err != nil {
			if strictMode {
				return fmt.Errorf("import failed for %q: %w", entry.Name, err)
			}
			log.Infof("Skipped %q: %v", entry.Name, err)
			skipped++
			continue
		}
		imported++
	}

	log.Infof("Import complete: %d imported, %d skipped", imported, skipped)
	return nil
}

func validateAndImportCigar(entry CigarImport, cigarService *services.CigarService) error {
	if entry.Name == "" {
		return fmt.Errorf("empty name")
	}

	if skipZero && entry.Quantity == 0 {
		return fmt.Errorf("zero quantity")
	}

	if entry.Quantity < 0 {
		return fmt.Errorf("negative quantity not allowed")
	}

	var acquiredOn *time.Time
	if entry.AcquiredOn != "" {
		t, err := time.Parse("2006-01-02", entry.AcquiredOn)
		if err != nil {
			return fmt.Errorf("invalid acquired_on date: %w", err)
		}
		acquiredOn = &t
	}

	quantity := entry.Quantity
	_, err := cigarService.CreateCigar(services.CreateCigarInput{
		Name:          entry.Name,
		Vitola:        entry.Vitola,
		Country:       entry.Country,
		PurchasePrice: entry.PurchasePrice,
		AcquiredOn:    acquiredOn,
		Quantity:      &quantity,
	})
	if err != nil {
		return fmt.Errorf("failed to create cigar: %w", err)
	}

	log.Infof("Imported %q (x%d)", entry.Name, entry.Quantity)
	return nil
}
