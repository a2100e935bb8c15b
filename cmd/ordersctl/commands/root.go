package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"smartorders/internal/infrastructure/auth"
	"smartorders/internal/infrastructure/orderapi"
	"smartorders/internal/usecase"
	"smartorders/pkg/logger"
	"smartorders/pkg/reqctx"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	token   string
	timeout time.Duration
	verbose bool

	client *orderapi.Client
	log    *logger.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Smart-home order client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = envOr("ORDERS_API_URL", "http://localhost:8080")
			}
			if token == "" {
				token = os.Getenv("SMARTORDERS_TOKEN")
			}
			mode := "prod"
			if verbose {
				mode = "dev"
			}
			l, err := logger.New(mode)
			if err != nil {
				return err
			}
			log = l
			client = orderapi.New(apiURL, timeout)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "order service base URL (default $ORDERS_API_URL or http://localhost:8080)")
	root.PersistentFlags().StringVarP(&token, "token", "t", "", "bearer token (default $SMARTORDERS_TOKEN)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log synchronizer requests")

	root.AddCommand(tokenCmd(), devicesCmd(), ordersCmd(), submitCmd())
	return root.Execute()
}

// session returns a context carrying the bearer token and a synchronizer for
// the token's client. Commands that talk to the order API go through it.
func session(ctx context.Context) (context.Context, *usecase.OrderSynchronizer, int64, error) {
	if token == "" {
		return nil, nil, 0, fmt.Errorf("token required (--token or SMARTORDERS_TOKEN)")
	}
	p, err := auth.PeekPrincipal(token)
	if err != nil {
		return nil, nil, 0, err
	}
	ctx = reqctx.WithBearer(reqctx.WithPrincipal(ctx, p), token)
	sync := usecase.NewOrderSynchronizer(client, nil, log)
	return ctx, sync, p.ClientID, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
