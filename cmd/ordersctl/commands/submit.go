package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"

	"github.com/spf13/cobra"
)

// submit: compose a draft from --device/--service flags and submit it.
func submitCmd() *cobra.Command {
	var (
		address  string
		devices  []string
		services []string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Compose a draft and submit it as an order",
		Example: `  ordersctl submit --address "Москва, Тверская 1" --device 1:2 --device 4
  ordersctl submit --address "..." --device 2 --service 3:Монтаж:150`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sync, clientID, err := session(cmd.Context())
			if err != nil {
				return err
			}

			composer := usecase.NewDraftComposer()
			if err := composer.StartDraft(clientID); err != nil {
				return err
			}
			for _, arg := range devices {
				id, qty, err := parseDeviceArg(arg)
				if err != nil {
					return err
				}
				d, err := client.GetDevice(ctx, id)
				if err != nil {
					return fmt.Errorf("device %d: %w", id, err)
				}
				if !d.IsActive {
					return fmt.Errorf("device %d: %w", id, usecase.ErrDeviceInactive)
				}
				if err := composer.AddDevice(d, qty); err != nil {
					return err
				}
			}
			for _, arg := range services {
				s, err := parseServiceArg(arg)
				if err != nil {
					return err
				}
				if err := composer.AddService(s); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			printDraft(out, composer.Snapshot())
			if dryRun {
				return nil
			}

			o, err := sync.SubmitDraft(ctx, composer, address)
			var partial *usecase.PartialSubmissionError
			if errors.As(err, &partial) {
				log.Warn("[orders][submit] order saved but not formed", "order_id", partial.OrderID)
				return fmt.Errorf("order %d was saved as a draft but not formed: %w", partial.OrderID, partial.Err)
			}
			if err != nil {
				return err
			}
			printOrders(out, []entities.RemoteOrder{o})
			return nil
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringArrayVar(&devices, "device", nil, "device as id[:quantity], repeatable")
	cmd.Flags().StringArrayVar(&services, "service", nil, "service as id:name:price, repeatable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the draft without submitting")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

// parseDeviceArg parses "id" or "id:quantity".
func parseDeviceArg(arg string) (int64, int, error) {
	idPart, qtyPart, hasQty := strings.Cut(strings.TrimSpace(arg), ":")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, 0, fmt.Errorf("invalid device %q", arg)
	}
	if !hasQty {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(qtyPart)
	if err != nil || qty < 1 {
		return 0, 0, fmt.Errorf("invalid quantity in %q", arg)
	}
	return id, qty, nil
}

// parseServiceArg parses "id:name:price".
func parseServiceArg(arg string) (entities.ServiceLine, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), ":", 3)
	if len(parts) != 3 {
		return entities.ServiceLine{}, fmt.Errorf("invalid service %q, expected id:name:price", arg)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || id <= 0 {
		return entities.ServiceLine{}, fmt.Errorf("invalid service id in %q", arg)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || price < 0 {
		return entities.ServiceLine{}, fmt.Errorf("invalid service price in %q", arg)
	}
	return entities.ServiceLine{ID: id, Name: strings.TrimSpace(parts[1]), Price: price}, nil
}
