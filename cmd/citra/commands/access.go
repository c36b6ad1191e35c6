package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/pkg/citra"
)

const (
	defaultAccessWindow       = 24 * time.Hour
	defaultMinElevationDeg    = 10.0
	defaultMinDurationMinutes = 1.0
)

// NewAccessCommand creates the access command group.
func NewAccessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access",
		Short: "Solve visibility windows",
		Long:  "Find when satellites are visible from a ground station or inside a sensor's field of view",
	}

	cmd.AddCommand(newAccessGroundStationCommand())
	cmd.AddCommand(newAccessFOVCommand())

	return cmd
}

func newAccessGroundStationCommand() *cobra.Command {
	var (
		start        string
		end          string
		minElevation float64
		minDuration  float64
		filter       string
	)

	cmd := &cobra.Command{
		Use:   "ground-station GROUND_STATION_ID",
		Short: "Find passes over a ground station",
		Long: `List the windows in which satellites rise above the ground station's
minimum elevation. The window defaults to the next 24 hours.`,
		Example: `  citra access ground-station 0a1b2c --min-elevation 20
  citra access ground-station 0a1b2c --filter 'satelliteId == "25544"'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			windowStart, windowEnd, err := parseWindow(start, end, time.Now().UTC())
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			passes, err := client.Access().GroundStation(cmd.Context(), &citra.SatelliteAccessToGroundStationRequest{
				GroundStationID:    args[0],
				Start:              windowStart,
				End:                windowEnd,
				MinElevationDeg:    minElevation,
				MinDurationMinutes: minDuration,
			})
			if err != nil {
				return fmt.Errorf("failed to solve ground station access: %w", err)
			}

			passes, err = applyFilter(passes, filter)
			if err != nil {
				return err
			}

			return renderOutput(passes, renderHorizonAccessTable)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "window start (RFC 3339, default now)")
	cmd.Flags().StringVar(&end, "end", "", "window end (RFC 3339, default start + 24h)")
	cmd.Flags().Float64Var(&minElevation, "min-elevation", defaultMinElevationDeg, "minimum elevation in degrees")
	cmd.Flags().Float64Var(&minDuration, "min-duration", defaultMinDurationMinutes, "minimum pass duration in minutes")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each pass's fields")

	return cmd
}

func newAccessFOVCommand() *cobra.Command {
	var (
		epoch          string
		rightAscension float64
		declination    float64
		fieldOfView    float64
		latitude       float64
		longitude      float64
		altitudeKm     float64
		frame          string
	)

	cmd := &cobra.Command{
		Use:   "fov",
		Short: "Find satellites inside a field of view",
		Long: `List the satellites inside a circular field of view pointed at a right
ascension and declination from a sensor location. Sensor altitude is in kilometers.`,
		Example: `  citra access fov --ra 180 --dec 0 --fov 2 --lat 32.44 --lon -110.79 --alt 2.791`,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseEpoch(epoch, time.Now().UTC())
			if err != nil {
				return err
			}

			err = validateCoordinates(latitude, longitude)
			if err != nil {
				return err
			}

			sensorFrame := citra.SensorFrame(strings.ToUpper(frame))

			_, err = sensorFrame.MarshalText()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			targets, err := client.Access().FOV(cmd.Context(), &citra.FOVAccessRequest{
				Epoch:              at,
				RightAscensionDeg:  rightAscension,
				DeclinationDeg:     declination,
				FieldOfViewDeg:     fieldOfView,
				SensorLatitudeDeg:  latitude,
				SensorLongitudeDeg: longitude,
				SensorAltitudeKm:   altitudeKm,
				SensorFrame:        sensorFrame,
			})
			if err != nil {
				return fmt.Errorf("failed to solve field of view access: %w", err)
			}

			return renderOutput(targets, renderFOVTable)
		},
	}

	cmd.Flags().StringVar(&epoch, "epoch", "", "epoch (RFC 3339, default now)")
	cmd.Flags().Float64Var(&rightAscension, "ra", 0, "right ascension in degrees")
	cmd.Flags().Float64Var(&declination, "dec", 0, "declination in degrees")
	cmd.Flags().Float64Var(&fieldOfView, "fov", 1, "field of view in degrees")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "sensor latitude in degrees")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "sensor longitude in degrees")
	cmd.Flags().Float64Var(&altitudeKm, "alt", 0, "sensor altitude in kilometers")
	cmd.Flags().StringVar(&frame, "frame", string(citra.SensorFrameJ2000), "sensor frame (J2000, TEME)")
	_ = cmd.MarkFlagRequired("ra")
	_ = cmd.MarkFlagRequired("dec")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

// parseWindow resolves --start and --end, defaulting to a 24 hour window from now.
func parseWindow(start, end string, now time.Time) (time.Time, time.Time, error) {
	windowStart, err := parseEpoch(start, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
	}

	windowEnd, err := parseEpoch(end, windowStart.Add(defaultAccessWindow))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
	}

	return windowStart, windowEnd, nil
}

func parseEpoch(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	epoch, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", value, err)
	}

	return epoch, nil
}

func renderHorizonAccessTable(passes []citra.HorizonAccess) error {
	if len(passes) == 0 {
		fmt.Println("No passes found")

		return nil
	}

	table := newTable("Satellite", "Rise", "Rise Az", "Set", "Set Az", "Duration (min)")

	for _, pass := range passes {
		satellite := pass.SatelliteID
		if pass.SatelliteName != nil {
			satellite = *pass.SatelliteName + " (" + pass.SatelliteID + ")"
		}

		_ = table.Append(
			satellite,
			formatTime(pass.Start.Epoch),
			formatFloat(pass.Start.AzimuthDeg, 1),
			formatTime(pass.End.Epoch),
			formatFloat(pass.End.AzimuthDeg, 1),
			formatFloat(pass.DurationMinutes, 1),
		)
	}

	return renderTable(table)
}

func renderFOVTable(targets []citra.FOVAccessResponse) error {
	if len(targets) == 0 {
		fmt.Println("No satellites in the field of view")

		return nil
	}

	table := newTable("Satellite", "Name", "Right Ascension", "Declination")

	for _, target := range targets {
		_ = table.Append(
			target.SatelliteID,
			stringOrNA(target.SatelliteName),
			formatFloat(target.RightAscensionDeg, 4),
			formatFloat(target.DeclinationDeg, 4),
		)
	}

	return renderTable(table)
}
