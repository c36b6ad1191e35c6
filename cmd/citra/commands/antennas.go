package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/pkg/citra"
)

const hzPerMHz = 1e6

// NewAntennasCommand creates the antennas command group.
func NewAntennasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "antennas",
		Aliases: []string{"antenna"},
		Short:   "Manage antennas",
		Long:    "List and inspect RF antennas",
	}

	cmd.AddCommand(newAntennasListCommand())
	cmd.AddCommand(newAntennasGetCommand())

	return cmd
}

func newAntennasListCommand() *cobra.Command {
	var (
		mine   bool
		filter string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List antennas",
		Long:    "List all antennas visible to you, or only your own with --mine",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var antennas []citra.Antenna
			if mine {
				antennas, err = client.Antennas().ListMine(cmd.Context())
			} else {
				antennas, err = client.Antennas().List(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list antennas: %w", err)
			}

			antennas, err = applyFilter(antennas, filter)
			if err != nil {
				return err
			}

			return renderOutput(antennas, renderAntennasTable)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only list antennas you own")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each antenna's fields")

	return cmd
}

func newAntennasGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ANTENNA_ID",
		Short: "Get antenna details",
		Long:  "Display detailed information about a specific antenna",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			antenna, err := client.Antennas().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get antenna: %w", err)
			}

			return renderOutput(antenna, renderAntennaDetails)
		},
	}
}

func renderAntennasTable(antennas []citra.Antenna) error {
	if len(antennas) == 0 {
		fmt.Println("No antennas found")

		return nil
	}

	table := newTable("ID", "Name", "Ground Station", "Band (MHz)", "Beam Width (deg)", "Last Connection")

	for _, antenna := range antennas {
		_ = table.Append(
			antenna.ID,
			antenna.Name,
			stringOrNA(antenna.GroundStationID),
			formatBand(antenna.MinFrequencyHz, antenna.MaxFrequencyHz),
			formatFloat(antenna.HalfPowerBeamWidth, 2),
			timeOrNA(antenna.LastConnectionEpoch),
		)
	}

	return renderTable(table)
}

func renderAntennaDetails(antenna *citra.Antenna) error {
	return renderProperties([][]string{
		{"ID", antenna.ID},
		{"Name", antenna.Name},
		{"Owner", antenna.UserID},
		{"Group", stringOrNA(antenna.UserGroupID)},
		{"Ground Station", stringOrNA(antenna.GroundStationID)},
		{"Satellite", stringOrNA(antenna.SatelliteID)},
		{"Band (MHz)", formatBand(antenna.MinFrequencyHz, antenna.MaxFrequencyHz)},
		{"Min Elevation (deg)", formatFloat(antenna.MinElevationDeg, 1)},
		{"Max Slew Rate (deg/s)", formatFloat(antenna.MaxSlewRateDegS, 2)},
		{"Home Az/El (deg)", formatFloat(antenna.HomeAzimuthDeg, 1) + " / " + formatFloat(antenna.HomeElevationDeg, 1)},
		{"Half Power Beam Width (deg)", formatFloat(antenna.HalfPowerBeamWidth, 2)},
		{"Created", formatTime(antenna.CreationEpoch)},
		{"Last Connection", timeOrNA(antenna.LastConnectionEpoch)},
	})
}

func formatBand(minHz, maxHz float64) string {
	return formatFloat(minHz/hzPerMHz, 3) + " - " + formatFloat(maxHz/hzPerMHz, 3)
}
