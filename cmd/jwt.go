package main

import (
	"context"
	"fmt"
	"fortune/internal/account"
	"fortune/internal/config"
	"fortune/pkg/domain"
	"fortune/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that signs an access token for a
// given user ID with the configured private key, the same way login does.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := domain.ParseUserID(subject)
			if err != nil {
				logger.Fatal(ctx, "subject is not a user ID", zap.String("subject", subject), zap.Error(err))
			}

			signer, err := account.NewSigner(cfg.JWT.PrivateKey, TTL, cfg.JWT.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}

			signed, err := signer.Sign(userID, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", cfg.JWT.TTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
