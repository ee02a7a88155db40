package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/config"
)

// IssueFunc firma un token de sesión para userID.
type IssueFunc func(userID string, ttl time.Duration) (string, error)

type tokenOptions struct {
	userID string
	ttl    time.Duration
}

// NewTokenCommand crea "token": emite un JWT firmado con JWT_SECRET para probar la API.
func NewTokenCommand(issue IssueFunc) *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token de sesión para desarrollo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := strings.TrimSpace(opts.userID)
			if userID == "" {
				userID = uuid.NewString()
			}
			if opts.ttl <= 0 {
				return errors.New("ttl must be positive")
			}

			token, err := issue(userID, opts.ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "id del usuario (sub); vacío genera uno nuevo")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 24*time.Hour, "vigencia del token")

	return cmd
}

func issueToken(userID string, ttl time.Duration) (string, error) {
	secret, audience, err := config.LoadAuth()
	if err != nil {
		return "", err
	}
	return auth.NewIssuer(secret, audience).Issue(userID, ttl)
}
