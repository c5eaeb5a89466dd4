package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/20238643/UPSC-PrepHub/internal/config"
	"github.com/20238643/UPSC-PrepHub/internal/database"
)

// NewMigrateCmd applies the database schema.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Println("[migrate] schema applied")
			return nil
		},
	}
}
