package commands

import (
	"fmt"
	"os"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/infrastructure/auth"

	"github.com/spf13/cobra"
)

// token: mint an access token with the server's JWT secret.
func tokenCmd() *cobra.Command {
	var (
		secret    string
		clientID  int64
		username  string
		moderator bool
		ttl       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			tokens, err := auth.NewTokenService(secret, ttl)
			if err != nil {
				return err
			}
			raw, err := tokens.Issue(entities.Principal{ClientID: clientID, Username: username, IsModerator: moderator})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default $JWT_SECRET)")
	cmd.Flags().Int64Var(&clientID, "client-id", 0, "client id")
	cmd.Flags().StringVar(&username, "username", "", "client name")
	cmd.Flags().BoolVar(&moderator, "moderator", false, "issue a moderator token")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("client-id")
	return cmd
}
