package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/pkg/citra"
)

// NewGroupsCommand creates the satellite groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Browse satellite groups",
		Long:    "List and inspect named collections of satellites",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsGetCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var (
		mine      bool
		favorites bool
		filter    string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List satellite groups",
		Long:    "List all satellite groups, your own with --mine, or your favorites with --favorites",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var groups []citra.SatelliteGroup

			switch {
			case mine:
				groups, err = client.SatelliteGroups().ListMine(cmd.Context())
			case favorites:
				groups, err = client.SatelliteGroups().ListFavorites(cmd.Context())
			default:
				groups, err = client.SatelliteGroups().List(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list satellite groups: %w", err)
			}

			groups, err = applyFilter(groups, filter)
			if err != nil {
				return err
			}

			return renderOutput(groups, renderGroupsTable)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only list groups you own")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only list groups you favorited")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each group's fields")
	cmd.MarkFlagsMutuallyExclusive("mine", "favorites")

	return cmd
}

func newGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Get satellite group details",
		Long:  "Display a satellite group and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.SatelliteGroups().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get satellite group: %w", err)
			}

			return renderOutput(group, func(group *citra.SatelliteGroup) error {
				return renderProperties([][]string{
					{"ID", group.ID},
					{"Title", group.Title},
					{"Details", stringOrNA(group.Details)},
					{"Owner", stringOrNA(group.Username)},
					{"Satellites", joinOrNA(group.SatelliteIDs)},
					{"Created", timeOrNA(group.CreationEpoch)},
					{"Updated", timeOrNA(group.UpdateEpoch)},
				})
			})
		},
	}
}

func renderGroupsTable(groups []citra.SatelliteGroup) error {
	if len(groups) == 0 {
		fmt.Println("No satellite groups found")

		return nil
	}

	table := newTable("ID", "Title", "Owner", "Satellites", "Favorite")

	for _, group := range groups {
		favorite := false
		if group.IsFavorited != nil {
			favorite = *group.IsFavorited
		}

		_ = table.Append(
			group.ID,
			group.Title,
			stringOrNA(group.Username),
			strconv.Itoa(len(group.SatelliteIDs)),
			formatBool(favorite),
		)
	}

	return renderTable(table)
}
