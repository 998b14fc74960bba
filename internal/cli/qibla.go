package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/display"
	"github.com/smokyabdulrahman/adhan/internal/qibla"
)

func newQiblaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qibla",
		Short: "Show the direction of the Kaaba",
		Long:  "Print the great-circle bearing from your location to the Kaaba in Makkah, in degrees clockwise from true north.",
		Args:  cobra.NoArgs,
		RunE:  runQibla,
	}
}

// qiblaJSON is the JSON form of a qibla bearing.
type qiblaJSON struct {
	Direction float64 `json:"direction"`
	Compass   string  `json:"compass"`
}

func newQiblaJSON(coords adhan.Coordinates) qiblaJSON {
	dir := qibla.Direction(coords)
	return qiblaJSON{Direction: dir, Compass: qibla.CompassPoint(dir)}
}

func runQibla(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	place, err := resolveLocation(contextOf(cmd), cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			qiblaJSON
		}{place.Coords.Latitude, place.Coords.Longitude, newQiblaJSON(place.Coords)})
	}

	dir := qibla.Direction(place.Coords)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold("Qibla"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", place.Label())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %.2f° from true north (%s)\n", display.Accent(display.Arrow(dir)), dir, qibla.CompassPoint(dir))
	fmt.Fprintln(w)
	return nil
}
