package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"smartorders/internal/domain/entities"
)

func printDevices(w io.Writer, devices []entities.Device) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPROTOCOL\tRATE")
	for _, d := range devices {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n", d.ID, d.Name, d.Protocol, d.DataPerHour)
	}
	_ = tw.Flush()
}

func printDraft(w io.Writer, d *entities.DraftOrder) {
	if d == nil {
		fmt.Fprintln(w, "no draft")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Draft %s (%s), %d devices\n", d.ID, d.Status.Label(), d.ItemCount())
	for _, it := range d.Items {
		fmt.Fprintf(tw, "  %d\t%s\tx%d\t%.2f\n", it.DeviceID, it.DeviceName, it.Quantity, it.DataPerHour)
	}
	for _, s := range d.Services {
		fmt.Fprintf(tw, "  +\t%s\t\t%.2f\n", s.Name, s.Price)
	}
	fmt.Fprintf(tw, "Traffic %.2f, total %.2f\n", d.TotalTraffic, d.Total)
	_ = tw.Flush()
}

func printOrders(w io.Writer, orders []entities.RemoteOrder) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "no orders")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tADDRESS\tTRAFFIC\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", o.ID, o.Status.Label(), o.Address, o.TotalTraffic, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()
}
