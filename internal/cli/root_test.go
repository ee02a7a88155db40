package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/db"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "listasctl", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"migrate", "token"} {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestTokenCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	tokenCmd, _, err := cmd.Find([]string{"token"})
	require.NoError(t, err)

	userFlag := tokenCmd.Flags().Lookup("user")
	require.NotNil(t, userFlag)
	assert.Equal(t, "", userFlag.DefValue)

	ttlFlag := tokenCmd.Flags().Lookup("ttl")
	require.NotNil(t, ttlFlag)
	assert.Equal(t, "24h0m0s", ttlFlag.DefValue)
}

func TestMigrateCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		databaseURL string
		migrateErr  error
		wantErr     string
		wantDir     db.Direction
	}{
		{name: "up", args: []string{"up"}, databaseURL: "postgres://x", wantDir: db.Up},
		{name: "down", args: []string{"down"}, databaseURL: "postgres://x", wantDir: db.Down},
		{name: "status", args: []string{"status"}, databaseURL: "postgres://x", wantDir: db.Status},
		{name: "invalid direction", args: []string{"sideways"}, databaseURL: "postgres://x", wantErr: "invalid argument"},
		{name: "missing direction", args: []string{}, databaseURL: "postgres://x", wantErr: "accepts 1 arg"},
		{name: "missing database url", args: []string{"up"}, wantErr: "DATABASE_URL"},
		{name: "migrate error", args: []string{"up"}, databaseURL: "postgres://x", migrateErr: errors.New("boom"), wantErr: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.databaseURL)

			var (
				called    bool
				gotURL    string
				gotDir    db.Direction
				gotWriter io.Writer
			)
			migrate := func(ctx context.Context, databaseURL string, direction db.Direction, out io.Writer) error {
				called = true
				gotURL = databaseURL
				gotDir = direction
				gotWriter = out
				return tt.migrateErr
			}

			cmd := NewMigrateCommand(migrate)
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, called)
			require.Equal(t, "postgres://x", gotURL)
			require.Equal(t, tt.wantDir, gotDir)
			require.Same(t, out, gotWriter)
		})
	}
}

func TestTokenCommand(t *testing.T) {
	t.Run("issues token for given user", func(t *testing.T) {
		var gotUser string
		var gotTTL time.Duration
		issue := func(userID string, ttl time.Duration) (string, error) {
			gotUser = userID
			gotTTL = ttl
			return "signed", nil
		}

		cmd := NewTokenCommand(issue)
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"--user", "user-1", "--ttl", "1h"})

		require.NoError(t, cmd.Execute())
		require.Equal(t, "user-1", gotUser)
		require.Equal(t, time.Hour, gotTTL)
		require.Equal(t, "signed\n", out.String())
	})

	t.Run("generates user when empty", func(t *testing.T) {
		var gotUser string
		issue := func(userID string, ttl time.Duration) (string, error) {
			gotUser = userID
			return "signed", nil
		}

		cmd := NewTokenCommand(issue)
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.Execute())
		require.Len(t, gotUser, 36)
	})

	t.Run("rejects non positive ttl", func(t *testing.T) {
		cmd := NewTokenCommand(func(string, time.Duration) (string, error) {
			t.Fatal("issue should not be called")
			return "", nil
		})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--ttl", "0s"})

		err := cmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), "ttl")
	})

	t.Run("wraps issue error", func(t *testing.T) {
		cmd := NewTokenCommand(func(string, time.Duration) (string, error) {
			return "", errors.New("no key")
		})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--user", "u"})

		err := cmd.Execute()
		require.Error(t, err)
		require.True(t, strings.HasPrefix(err.Error(), "issue token:"))
	})
}

func TestIssueToken_VerifiesWithSameSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_AUDIENCE", "authenticated")

	raw, err := issueToken("user-1", time.Hour)
	require.NoError(t, err)

	session, err := auth.NewVerifier("s3cret", "authenticated").Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", session.UserID)
}

func TestIssueToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := issueToken("user-1", time.Hour)
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}
