package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-copilot/internal/adapter/repository"
	"github.com/johnquangdev/meeting-copilot/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-copilot/internal/usecase/auth"
	"github.com/johnquangdev/meeting-copilot/pkg/jwt"
)

var (
	tokenEmail string
	tokenName  string
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local testing",
		Long: `Issue a signed access token for a user, creating the user on first use.

Refused when SERVER_ENVIRONMENT=production.

Example:
  meeting-copilot token --email ana@example.com --name Ana`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}

	cmd.Flags().StringVar(&tokenEmail, "email", "", "user email (required)")
	cmd.Flags().StringVar(&tokenName, "name", "", "display name for a new user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		return errors.New("token command is disabled in production")
	}

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db) //nolint:errcheck

	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
	sessions := auth.NewSessionService(repository.NewUserRepository(db), jwtManager, logger)

	issued, err := sessions.IssueToken(cmd.Context(), tokenEmail, tokenName)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(issued)
}
