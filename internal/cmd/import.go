package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/importer"
	"github.com/safespace-vault/safespace/internal/server"
)

var (
	exportFilePath string
	dryRun         bool
)

func init() {
	importCmd.Flags().StringVarP(&exportFilePath, "file", "f", "", "JSON export of the old users table")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "only show what would be imported")
	_ = importCmd.MarkFlagRequired("file")
}

func validHash(x string) string {
	if importer.ValidHash(x) {
		return "VALID"
	}
	return "INVALID"
}

func skippedTable(skipped []importer.Skipped) {
	if len(skipped) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Skipped")
	t.AppendHeader(table.Row{"#", "Email", "Reason"})
	for i, curr := range skipped {
		t.AppendRow(table.Row{i + 1, curr.Email, curr.Reason})
	}
	t.Render()
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import accounts exported from the previous hosted backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := os.ReadFile(exportFilePath)
		if err != nil {
			log.Error().Err(err).Str("file", exportFilePath).Msg("could not read file")
			return err
		}

		r, err := importer.Import(contents)
		if err != nil {
			log.Error().Err(err).Str("file", exportFilePath).Msg("could not parse file")
			return err
		}

		accountTable := table.NewWriter()
		accountTable.SetOutputMirror(os.Stdout)
		accountTable.AppendHeader(table.Row{"#", "Name", "Email", "Phone", "Password Hash", "Security Key Hash", "Created"})
		for i, curr := range r.Accounts {
			created := "<import time>"
			if !curr.CreatedAt.IsZero() {
				created = curr.CreatedAt.Format(time.RFC3339)
			}
			accountTable.AppendRow(table.Row{i + 1,
				curr.Name,
				curr.Email,
				curr.Phone,
				validHash(curr.PasswordHash),
				validHash(curr.SecurityKeyHash),
				created,
			})
		}
		accountTable.Render()

		skippedTable(r.Skipped)

		if dryRun {
			log.Info().Int("accounts", len(r.Accounts)).Msg("dry run, nothing written")
			return nil
		}

		if err := config.Init(); err != nil {
			log.Warn().Err(err).Msg("could not read config file, using environment only")
		}

		ctx := context.Background()
		database, err := server.OpenDatabase(ctx)
		if err != nil {
			return fmt.Errorf("safespace: import: could not open database: %w", err)
		}
		defer database.Close()

		created, skipped, err := importer.Save(ctx, database, r.Accounts)
		skippedTable(skipped)
		if err != nil {
			return err
		}

		fmt.Printf("imported %d of %d accounts\n", created, len(r.Accounts))
		return nil
	},
}
