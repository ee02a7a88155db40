package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Lelo88/listas-api/internal/config"
	"github.com/Lelo88/listas-api/internal/db"
)

// MigrateFunc aplica una dirección de migración contra la base indicada.
type MigrateFunc func(ctx context.Context, databaseURL string, direction db.Direction, out io.Writer) error

// NewMigrateCommand crea "migrate up|down|status".
func NewMigrateCommand(migrate MigrateFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate <up|down|status>",
		Short:     "Aplica o inspecciona las migraciones de la base",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(db.Up), string(db.Down), string(db.Status)},
		RunE: func(cmd *cobra.Command, args []string) error {
			databaseURL, err := config.LoadDatabaseURL()
			if err != nil {
				return err
			}
			return migrate(cmd.Context(), databaseURL, db.Direction(args[0]), cmd.OutOrStdout())
		},
	}

	return cmd
}

func runMigrations(ctx context.Context, databaseURL string, direction db.Direction, out io.Writer) error {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	return db.Migrate(ctx, pool, direction, out)
}
