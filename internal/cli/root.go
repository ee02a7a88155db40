// Package cli arma listasctl: tareas operativas (migraciones, tokens de prueba)
// que no pertenecen al servidor HTTP.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand crea el comando raíz de listasctl.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "listasctl",
		Short:         "Herramientas operativas de listas-api",
		Long:          "Corre migraciones de base de datos y emite tokens de sesión para desarrollo.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewMigrateCommand(runMigrations))
	cmd.AddCommand(NewTokenCommand(issueToken))

	return cmd
}
