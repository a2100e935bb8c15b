package commands

import (
	"strconv"

	"smartorders/internal/domain/entities"

	"github.com/spf13/cobra"
)

func devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Browse the device catalog",
	}

	var search, protocol string
	list := &cobra.Command{
		Use:   "list",
		Short: "List active devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := client.ListDevices(cmd.Context(), entities.DeviceFilter{Search: search, Protocol: protocol})
			if err != nil {
				return err
			}
			printDevices(cmd.OutOrStdout(), devices)
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "name substring")
	list.Flags().StringVar(&protocol, "protocol", "", "protocol")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			d, err := client.GetDevice(cmd.Context(), id)
			if err != nil {
				return err
			}
			printDevices(cmd.OutOrStdout(), []entities.Device{d})
			return nil
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
