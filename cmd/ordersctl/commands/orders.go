package commands

import (
	"fmt"
	"strconv"

	"smartorders/internal/domain/entities"

	"github.com/spf13/cobra"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Work with your orders",
	}
	cmd.AddCommand(ordersListCmd(), ordersUpdateCmd(), ordersDeleteCmd())
	return cmd
}

func ordersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sync, _, err := session(cmd.Context())
			if err != nil {
				return err
			}
			if err := sync.FetchOrders(ctx); err != nil {
				return err
			}
			printOrders(cmd.OutOrStdout(), sync.State().Orders)
			return nil
		},
	}
}

func ordersUpdateCmd() *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the delivery address of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			ctx, sync, _, err := session(cmd.Context())
			if err != nil {
				return err
			}
			o, err := sync.UpdateOrder(ctx, id, entities.OrderPatch{Address: address})
			if err != nil {
				return err
			}
			printOrders(cmd.OutOrStdout(), []entities.RemoteOrder{o})
			return nil
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "new delivery address")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func ordersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			ctx, sync, _, err := session(cmd.Context())
			if err != nil {
				return err
			}
			if err := sync.DeleteOrder(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %d deleted\n", id)
			return nil
		},
	}
}
