package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
)

const (
	maxLatitudeDeg  = 90
	maxLongitudeDeg = 180
)

// NewGroundStationsCommand creates the ground-stations command group.
func NewGroundStationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ground-stations",
		Aliases: []string{"ground-station", "gs"},
		Short:   "Manage ground stations",
		Long:    "List, inspect, create and delete ground stations",
	}

	cmd.AddCommand(newGroundStationsListCommand())
	cmd.AddCommand(newGroundStationsGetCommand())
	cmd.AddCommand(newGroundStationsCreateCommand())
	cmd.AddCommand(newGroundStationsDeleteCommand())

	return cmd
}

func newGroundStationsListCommand() *cobra.Command {
	var (
		mine   bool
		filter string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ground stations",
		Long:    "List all ground stations visible to you, or only your own with --mine",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var stations []citra.GroundStation
			if mine {
				stations, err = client.GroundStations().ListMine(cmd.Context())
			} else {
				stations, err = client.GroundStations().List(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list ground stations: %w", err)
			}

			stations, err = applyFilter(stations, filter)
			if err != nil {
				return err
			}

			return renderOutput(stations, renderGroundStationsTable)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only list ground stations you own")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each ground station's fields")

	return cmd
}

func newGroundStationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUND_STATION_ID",
		Short: "Get ground station details",
		Long:  "Display detailed information about a specific ground station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			station, err := client.GroundStations().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get ground station: %w", err)
			}

			return renderOutput(station, renderGroundStationDetails)
		},
	}
}

func newGroundStationsCreateCommand() *cobra.Command {
	var (
		latitude  float64
		longitude float64
		altitude  float64
	)

	cmd := &cobra.Command{
		Use:     "create NAME",
		Short:   "Create a ground station",
		Long:    "Register a ground station. Altitude is given in meters.",
		Example: `  citra ground-stations create "Mount Lemmon" --lat 32.4434 --lon -110.7881 --alt 2791`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateCoordinates(latitude, longitude)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			station, err := client.GroundStations().Create(cmd.Context(), &citra.GroundStationRequest{
				Name:         args[0],
				LatitudeDeg:  latitude,
				LongitudeDeg: longitude,
				AltitudeM:    altitude,
			})
			if err != nil {
				return fmt.Errorf("failed to create ground station: %w", err)
			}

			return renderOutput(station, renderGroundStationDetails)
		},
	}

	cmd.Flags().Float64Var(&latitude, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "longitude in degrees")
	cmd.Flags().Float64Var(&altitude, "alt", 0, "altitude in meters")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func newGroundStationsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUND_STATION_ID",
		Short: "Delete a ground station",
		Long:  "Delete a ground station you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.GroundStations().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete ground station: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted ground station %s\n", args[0])

			return nil
		},
	}
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -maxLatitudeDeg || latitude > maxLatitudeDeg {
		return fmt.Errorf("%w: %g", constants.ErrLatitudeOutOfRange, latitude)
	}

	if longitude < -maxLongitudeDeg || longitude > maxLongitudeDeg {
		return fmt.Errorf("%w: %g", constants.ErrLongitudeOutOfRange, longitude)
	}

	return nil
}

func renderGroundStationsTable(stations []citra.GroundStation) error {
	if len(stations) == 0 {
		fmt.Println("No ground stations found")

		return nil
	}

	table := newTable("ID", "Name", "Latitude", "Longitude", "Altitude (km)", "Last Connection")

	for _, station := range stations {
		_ = table.Append(
			station.ID,
			station.Name,
			formatFloat(station.LatitudeDeg, 4),
			formatFloat(station.LongitudeDeg, 4),
			kilometers(station.AltitudeM),
			timeOrNA(station.LastConnectionEpoch),
		)
	}

	return renderTable(table)
}

func renderGroundStationDetails(station *citra.GroundStation) error {
	return renderProperties([][]string{
		{"ID", station.ID},
		{"Name", station.Name},
		{"Owner", station.UserID},
		{"Latitude (deg)", formatFloat(station.LatitudeDeg, 6)},
		{"Longitude (deg)", formatFloat(station.LongitudeDeg, 6)},
		{"Altitude (km)", kilometers(station.AltitudeM)},
		{"Created", formatTime(station.CreationEpoch)},
		{"Last Connection", timeOrNA(station.LastConnectionEpoch)},
	})
}
