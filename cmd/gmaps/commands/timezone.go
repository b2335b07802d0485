package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTimeZoneCommand creates the timezone command
func NewTimeZoneCommand() *cobra.Command {
	var timestamp string

	cmd := &cobra.Command{
		Use:   "timezone LAT,LNG",
		Short: "Resolve the time zone at a coordinate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := parseLatLng(args[0])
			if err != nil {
				return err
			}

			request := &gmaps.TimeZoneRequest{Location: &location}

			if timestamp != "" {
				instant, err := time.Parse(time.RFC3339, timestamp)
				if err != nil {
					return fmt.Errorf("parsing timestamp: %w", err)
				}

				request.Timestamp = instant
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.TimeZone().TimeZone(cmd.Context(), request)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(response); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Time Zone", response.TimeZoneID)
			_ = table.Append("Name", response.TimeZoneName)
			_ = table.Append("UTC Offset", (time.Duration(response.RawOffset) * time.Second).String())
			_ = table.Append("DST Offset", (time.Duration(response.DstOffset) * time.Second).String())

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&timestamp, "timestamp", "", "RFC3339 instant used to resolve DST (default now)")

	return cmd
}
