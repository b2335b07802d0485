package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewGeocodeCommand creates the geocode command
func NewGeocodeCommand() *cobra.Command {
	var (
		language string
		region   string
	)

	cmd := &cobra.Command{
		Use:   "geocode ADDRESS",
		Short: "Resolve an address into coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.Geocoding().Geocode(cmd.Context(), &gmaps.GeocodingRequest{
				Address:  args[0],
				Language: language,
				Region:   region,
			})
			if err != nil {
				return err
			}

			return renderGeocodingResults(response.Results)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "language code for result text")
	cmd.Flags().StringVar(&region, "region", "", "ccTLD region biasing code")

	return cmd
}

// NewReverseGeocodeCommand creates the reverse-geocode command
func NewReverseGeocodeCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "reverse-geocode LAT,LNG",
		Short: "Resolve coordinates into addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := parseLatLng(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.Geocoding().ReverseGeocode(cmd.Context(), &gmaps.ReverseGeocodingRequest{
				Location: &location,
				Language: language,
			})
			if err != nil {
				return err
			}

			return renderGeocodingResults(response.Results)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "language code for result text")

	return cmd
}

func renderGeocodingResults(results []gmaps.GeocodingResult) error {
	if handled, err := renderStructured(results); handled {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Address", "Location", "Place ID", "Types")

	for _, result := range results {
		_ = table.Append(
			result.FormattedAddress,
			result.Geometry.Location.String(),
			result.PlaceID,
			strings.Join(result.Types, ", "),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
