// Package gmaps defines the public contract of the Google Maps Platform
// client: request and response types for the supported endpoints, the
// error taxonomy shared by both service generations, the Transient or
// Permanent classification that drives retries, and the configuration
// consumed by pkg/gmapsclient.
//
// Requests are plain values. A request never references a live client, so
// the snapshot stored inside a TextSearchPage or AutocompleteSession can
// be serialized, persisted, and re-issued later to continue pagination or
// an autocomplete session.
//
// Construct a working client with gmapsclient.New:
//
//	client, err := gmapsclient.New(&gmaps.Config{APIKey: key})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Geocoding().Geocode(ctx, &gmaps.GeocodingRequest{
//		Address: "1600 Amphitheatre Parkway, Mountain View, CA",
//	})
package gmaps
