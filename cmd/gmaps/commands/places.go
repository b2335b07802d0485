package commands

import (
	"fmt"
	"os"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// defaultSearchFieldMask covers the columns the table output renders.
var defaultSearchFieldMask = []string{
	"places.id",
	"places.displayName",
	"places.formattedAddress",
	"places.rating",
	"nextPageToken",
}

// NewPlacesCommand creates the places command group
func NewPlacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Search and inspect places",
	}

	cmd.AddCommand(newPlacesSearchCommand())
	cmd.AddCommand(newPlacesAutocompleteCommand())
	cmd.AddCommand(newPlacesDetailsCommand())

	return cmd
}

func newPlacesSearchCommand() *cobra.Command {
	var (
		fieldMask []string
		language  string
		pageSize  int
		allPages  bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search places by free-text query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			request := &gmaps.TextSearchRequest{
				Query:        args[0],
				FieldMask:    fieldMask,
				LanguageCode: language,
				PageSize:     pageSize,
			}

			var places []gmaps.Place

			if allPages {
				places, err = client.Places().AllPlaces(cmd.Context(), request)
				if err != nil {
					return err
				}
			} else {
				page, err := client.Places().TextSearch(cmd.Context(), request)
				if err != nil {
					return err
				}

				places = page.Places

				if page.HasNextPage() {
					defer fmt.Fprintln(os.Stderr, "More results available; rerun with --all-pages")
				}
			}

			return renderPlaces(places)
		},
	}

	cmd.Flags().StringSliceVar(&fieldMask, "field-mask", defaultSearchFieldMask, "place fields to request")
	cmd.Flags().StringVar(&language, "language", "", "language code for result text")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page (1-20)")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "follow pagination and collect every page")

	return cmd
}

func newPlacesAutocompleteCommand() *cobra.Command {
	var (
		session  string
		language string
	)

	cmd := &cobra.Command{
		Use:   "autocomplete INPUT",
		Short: "Fetch place predictions for partial input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.Places().Autocomplete(cmd.Context(), &gmaps.AutocompleteRequest{
				Input:        args[0],
				SessionToken: session,
				LanguageCode: language,
			})
			if err != nil {
				return err
			}

			if handled, err := renderStructured(response.Suggestions); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Prediction", "Place ID")

			for _, suggestion := range response.Suggestions {
				if suggestion.PlacePrediction != nil {
					_ = table.Append(suggestion.PlacePrediction.Text.Text, suggestion.PlacePrediction.PlaceID)
				}

				if suggestion.QueryPrediction != nil {
					_ = table.Append(suggestion.QueryPrediction.Text.Text, "")
				}
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "session token grouping autocomplete keystrokes")
	cmd.Flags().StringVar(&language, "language", "", "language code for prediction text")

	return cmd
}

func newPlacesDetailsCommand() *cobra.Command {
	var (
		fieldMask []string
		session   string
		language  string
	)

	cmd := &cobra.Command{
		Use:   "details PLACE_ID",
		Short: "Fetch details for a single place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			place, err := client.Places().PlaceDetails(cmd.Context(), &gmaps.PlaceDetailsRequest{
				PlaceID:      args[0],
				FieldMask:    fieldMask,
				SessionToken: session,
				LanguageCode: language,
			})
			if err != nil {
				return err
			}

			if handled, err := renderStructured(place); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", place.DisplayName.Text)
			_ = table.Append("Address", place.FormattedAddress)
			_ = table.Append("Location", fmt.Sprintf("%g,%g", place.Location.Latitude, place.Location.Longitude))
			_ = table.Append("Rating", fmt.Sprintf("%.1f (%d)", place.Rating, place.UserRatingCount))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fieldMask, "field-mask", []string{"id", "displayName", "formattedAddress", "location", "rating", "userRatingCount"}, "place fields to request")
	cmd.Flags().StringVar(&session, "session", "", "session token closing an autocomplete session")
	cmd.Flags().StringVar(&language, "language", "", "language code for result text")

	return cmd
}

func renderPlaces(places []gmaps.Place) error {
	if handled, err := renderStructured(places); handled {
		return err
	}

	if len(places) == 0 {
		fmt.Println("No places found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Address", "Rating", "Place ID")

	for _, place := range places {
		rating := ""
		if place.Rating > 0 {
			rating = fmt.Sprintf("%.1f", place.Rating)
		}

		_ = table.Append(place.DisplayName.Text, place.FormattedAddress, rating, place.ID)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
