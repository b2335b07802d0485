package commands

import (
	"fmt"
	"os"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewElevationCommand creates the elevation command
func NewElevationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elevation LAT,LNG [LAT,LNG...]",
		Short: "Sample elevations at one or more coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations := make([]gmaps.LatLng, 0, len(args))

			for _, arg := range args {
				location, err := parseLatLng(arg)
				if err != nil {
					return err
				}

				locations = append(locations, location)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.Elevation().Elevation(cmd.Context(), &gmaps.ElevationRequest{
				Locations: locations,
			})
			if err != nil {
				return err
			}

			if handled, err := renderStructured(response.Results); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Location", "Elevation (m)", "Resolution (m)")

			for _, result := range response.Results {
				_ = table.Append(
					result.Location.String(),
					fmt.Sprintf("%.2f", result.Elevation),
					fmt.Sprintf("%.2f", result.Resolution),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
