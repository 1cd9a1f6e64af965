package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nabilahcare/klinik_backend/config"
	"github.com/nabilahcare/klinik_backend/internal/repo"
	"github.com/nabilahcare/klinik_backend/pkg/tablestore"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the workbook with all sheets and headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			tables := repo.Tables{
				Patient:     cfg.Store.PatientSheet,
				Reservation: cfg.Store.ReservationSheet,
				Treatment:   cfg.Store.TreatmentSheet,
				Product:     cfg.Store.ProductSheet,
				Therapist:   cfg.Store.TherapistSheet,
			}

			fmt.Printf("Initializing workbook at %s...\n", cfg.Store.WorkbookPath)
			wb := tablestore.NewWorkbook(cfg.Store.WorkbookPath, repo.HeadersFor(tables))
			err = wb.Init([]string{
				tables.Patient, tables.Reservation, tables.Treatment,
				tables.Product, tables.Therapist,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize workbook: %w", err)
			}
			fmt.Println("Workbook initialized successfully.")
			return nil
		},
	}

	return cmd
}
