package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/pkg/citra"
)

// NewSatellitesCommand creates the satellites command group.
func NewSatellitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "satellites",
		Aliases: []string{"satellite", "sats"},
		Short:   "Browse the satellite catalog",
		Long:    "Search the satellite catalog and inspect satellites and their element sets",
	}

	cmd.AddCommand(newSatellitesListCommand())
	cmd.AddCommand(newSatellitesGetCommand())
	cmd.AddCommand(newSatellitesOverviewCommand())
	cmd.AddCommand(newSatellitesElsetCommand())

	return cmd
}

type satellitesListFlags struct {
	ids            []string
	search         string
	country        string
	includeDecayed bool
	limit          int
	offset         int
	filter         string
}

func newSatellitesListCommand() *cobra.Command {
	flags := &satellitesListFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List satellites",
		Long:    "Search the satellite catalog by name, country or ID",
		Example: `  citra satellites list --search starlink --limit 20
  citra satellites list --ids 25544,20580
  citra satellites list --country US --filter 'inclinationDeg > 90'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			satellites, err := client.Satellites().List(cmd.Context(), buildSatelliteListQuery(cmd, flags))
			if err != nil {
				return fmt.Errorf("failed to list satellites: %w", err)
			}

			satellites, err = applyFilter(satellites, flags.filter)
			if err != nil {
				return err
			}

			return renderOutput(satellites, renderSatellitesTable)
		},
	}

	cmd.Flags().StringSliceVar(&flags.ids, "ids", nil, "satellite IDs to fetch")
	cmd.Flags().StringVar(&flags.search, "search", "", "name search")
	cmd.Flags().StringVar(&flags.country, "country", "", "country code")
	cmd.Flags().BoolVar(&flags.includeDecayed, "include-decayed", false, "include decayed objects")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of results")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVarP(&flags.filter, "filter", "f", "", "expression evaluated against each satellite's fields")

	return cmd
}

// buildSatelliteListQuery sends only the flags the user set.
func buildSatelliteListQuery(cmd *cobra.Command, flags *satellitesListFlags) *citra.SatelliteListQuery {
	query := &citra.SatelliteListQuery{IDs: flags.ids}

	if flags.search != "" {
		query.Search = &flags.search
	}

	if flags.country != "" {
		query.Country = &flags.country
	}

	if cmd.Flags().Changed("include-decayed") {
		query.IncludeDecayed = &flags.includeDecayed
	}

	if cmd.Flags().Changed("limit") {
		query.Limit = &flags.limit
	}

	if cmd.Flags().Changed("offset") {
		query.Offset = &flags.offset
	}

	return query
}

func newSatellitesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SATELLITE_ID",
		Short: "Get satellite details",
		Long:  "Display catalog information about a specific satellite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			satellite, err := client.Satellites().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get satellite: %w", err)
			}

			return renderOutput(satellite, renderSatelliteDetails)
		},
	}
}

func newSatellitesOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show catalog totals",
		Long:  "Display active and decayed satellite counts and sensor totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			overview, err := client.Satellites().Overview(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get satellite overview: %w", err)
			}

			return renderOutput(overview, func(overview *citra.SatelliteOverview) error {
				return renderProperties([][]string{
					{"Active Satellites", strconv.FormatInt(overview.ActiveSatelliteCount, 10)},
					{"Decayed Satellites", strconv.FormatInt(overview.DecayedSatelliteCount, 10)},
					{"Telescopes", strconv.FormatInt(overview.TelescopeCount, 10)},
					{"Antennas", strconv.FormatInt(overview.AntennaCount, 10)},
				})
			})
		},
	}
}

func newSatellitesElsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elset SATELLITE_ID",
		Short: "Show the latest element set",
		Long:  "Display the most recent element set of a satellite, including its TLE lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			elset, err := client.Satellites().LatestElset(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get latest elset: %w", err)
			}

			return renderOutput(elset, renderElsetDetails)
		},
	}
}

func renderSatellitesTable(satellites []citra.Satellite) error {
	if len(satellites) == 0 {
		fmt.Println("No satellites found")

		return nil
	}

	table := newTable("ID", "Name", "NORAD", "Country", "Regime", "Inclination", "Period (min)")

	for _, satellite := range satellites {
		_ = table.Append(
			satellite.ID,
			satellite.Name,
			int64OrNA(satellite.NoradCatID),
			stringOrNA(satellite.CountryCode),
			stringOrNA(satellite.OrbitRegime),
			floatOrNA(satellite.InclinationDeg, 2),
			floatOrNA(satellite.PeriodMinutes, 1),
		)
	}

	return renderTable(table)
}

func renderSatelliteDetails(satellite *citra.Satellite) error {
	return renderProperties([][]string{
		{"ID", satellite.ID},
		{"Name", satellite.Name},
		{"NORAD Catalog ID", int64OrNA(satellite.NoradCatID)},
		{"International Designator", stringOrNA(satellite.InternationalDesignator)},
		{"Type", stringOrNA(satellite.Type)},
		{"Country", stringOrNA(satellite.CountryName)},
		{"Launch", timeOrNA(satellite.LaunchDateEpoch)},
		{"Decay", timeOrNA(satellite.DecayEpoch)},
		{"Orbit Regime", stringOrNA(satellite.OrbitRegimeFullName)},
		{"Apogee (km)", floatOrNA(satellite.ApogeeKm, 1)},
		{"Perigee (km)", floatOrNA(satellite.PerigeeKm, 1)},
		{"Inclination (deg)", floatOrNA(satellite.InclinationDeg, 3)},
		{"Period (min)", floatOrNA(satellite.PeriodMinutes, 2)},
		{"Eccentricity", floatOrNA(satellite.Eccentricity, 6)},
		{"RCS Size", stringOrNA(satellite.RCSSize)},
	})
}

func renderElsetDetails(elset *citra.Elset) error {
	return renderProperties([][]string{
		{"ID", elset.ID},
		{"Satellite", elset.SatelliteID + " (" + stringOrNA(elset.SatelliteName) + ")"},
		{"Epoch", formatTime(elset.Epoch)},
		{"Type", stringOrNA(elset.Type)},
		{"Mean Motion (rev/day)", formatFloat(elset.MeanMotion, 8)},
		{"Eccentricity", formatFloat(elset.Eccentricity, 7)},
		{"Inclination (deg)", formatFloat(elset.Inclination, 4)},
		{"RAAN (deg)", formatFloat(elset.RAAN, 4)},
		{"Argument of Perigee (deg)", formatFloat(elset.ArgumentOfPerigee, 4)},
		{"Mean Anomaly (deg)", formatFloat(elset.MeanAnomaly, 4)},
		{"TLE", strings.Join(elset.TLE, "\n")},
	})
}

func int64OrNA(value *int64) string {
	if value == nil {
		return valueOrNA("")
	}

	return strconv.FormatInt(*value, 10)
}
