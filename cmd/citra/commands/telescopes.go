package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/pkg/citra"
)

// NewTelescopesCommand creates the telescopes command group.
func NewTelescopesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "telescopes",
		Aliases: []string{"telescope", "scopes"},
		Short:   "Manage telescopes",
		Long:    "List and inspect optical telescopes and their tasks",
	}

	cmd.AddCommand(newTelescopesListCommand())
	cmd.AddCommand(newTelescopesGetCommand())
	cmd.AddCommand(newTelescopesTasksCommand())

	return cmd
}

func newTelescopesListCommand() *cobra.Command {
	var (
		mine   bool
		filter string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List telescopes",
		Long:    "List all telescopes visible to you, or only your own with --mine",
		Example: `  citra telescopes list --mine
  citra telescopes list --filter 'maxMagnitude > 12 && automatedScheduling'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var telescopes []citra.Telescope
			if mine {
				telescopes, err = client.Telescopes().ListMine(cmd.Context())
			} else {
				telescopes, err = client.Telescopes().List(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list telescopes: %w", err)
			}

			telescopes, err = applyFilter(telescopes, filter)
			if err != nil {
				return err
			}

			return renderOutput(telescopes, renderTelescopesTable)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only list telescopes you own")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each telescope's fields")

	return cmd
}

func newTelescopesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TELESCOPE_ID",
		Short: "Get telescope details",
		Long:  "Display detailed information about a specific telescope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			telescope, err := client.Telescopes().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get telescope: %w", err)
			}

			return renderOutput(telescope, renderTelescopeDetails)
		},
	}
}

func newTelescopesTasksCommand() *cobra.Command {
	var (
		statuses []string
		filter   string
	)

	cmd := &cobra.Command{
		Use:     "tasks TELESCOPE_ID",
		Short:   "List tasks assigned to a telescope",
		Long:    "List the tasks of a telescope, optionally restricted to one or more statuses",
		Example: `  citra telescopes tasks 0a1b2c --status Pending --status Scheduled`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseTaskStatuses(statuses)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var tasks []citra.Task
			if len(parsed) > 0 {
				tasks, err = client.Telescopes().ListTasksByStatus(cmd.Context(), args[0], parsed)
			} else {
				tasks, err = client.Telescopes().ListTasks(cmd.Context(), args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to list telescope tasks: %w", err)
			}

			tasks, err = applyFilter(tasks, filter)
			if err != nil {
				return err
			}

			return renderOutput(tasks, renderTasksTable)
		},
	}

	cmd.Flags().StringSliceVarP(&statuses, "status", "s", nil, "task status to include (repeatable)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each task's fields")

	return cmd
}

func renderTelescopesTable(telescopes []citra.Telescope) error {
	if len(telescopes) == 0 {
		fmt.Println("No telescopes found")

		return nil
	}

	table := newTable("ID", "Name", "Ground Station", "FOV (deg)", "Max Mag", "Automated", "Last Connection")

	for _, telescope := range telescopes {
		_ = table.Append(
			telescope.ID,
			telescope.Name,
			stringOrNA(telescope.GroundStationID),
			formatFloat(telescope.FieldOfViewDeg, 2),
			formatFloat(telescope.LimitingMagnitude, 1),
			formatBool(telescope.AutomatedScheduling),
			timeOrNA(telescope.LastConnectionEpoch),
		)
	}

	return renderTable(table)
}

func renderTelescopeDetails(telescope *citra.Telescope) error {
	return renderProperties([][]string{
		{"ID", telescope.ID},
		{"Name", telescope.Name},
		{"Owner", telescope.UserID},
		{"Ground Station", stringOrNA(telescope.GroundStationID)},
		{"Satellite", stringOrNA(telescope.SatelliteID)},
		{"Angular Noise (arcsec)", formatFloat(telescope.AngularNoiseArcsec, 2)},
		{"Field of View (deg)", formatFloat(telescope.FieldOfViewDeg, 3)},
		{"Limiting Magnitude", formatFloat(telescope.LimitingMagnitude, 1)},
		{"Min Elevation (deg)", formatFloat(telescope.MinElevationDeg, 1)},
		{"Max Slew Rate (deg/s)", formatFloat(telescope.MaxSlewRateDegS, 2)},
		{"Home Az/El (deg)", formatFloat(telescope.HomeAzimuthDeg, 1) + " / " + formatFloat(telescope.HomeElevationDeg, 1)},
		{"Automated Scheduling", formatBool(telescope.AutomatedScheduling)},
		{"Created", formatTime(telescope.CreationEpoch)},
		{"Last Connection", timeOrNA(telescope.LastConnectionEpoch)},
	})
}
