package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
)

// StatusReport summarizes the account and the fleet it owns.
type StatusReport struct {
	Account        *citra.UserAccount       `json:"account"         yaml:"account"`
	Overview       *citra.SatelliteOverview `json:"overview"        yaml:"overview"`
	Telescopes     int                      `json:"telescopes"      yaml:"telescopes"`
	Antennas       int                      `json:"antennas"        yaml:"antennas"`
	GroundStations int                      `json:"ground_stations" yaml:"ground_stations"`
	PendingTasks   int                      `json:"pending_tasks"   yaml:"pending_tasks"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account and fleet status",
		Long:  "Display the authenticated account, catalog totals and the size of your fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			report, err := collectStatus(cmd.Context(), client)
			if err != nil {
				return err
			}

			return renderOutput(report, renderStatus)
		},
	}
}

// collectStatus issues the independent reads concurrently. The first failure
// cancels the rest.
func collectStatus(ctx context.Context, client citra.Client) (*StatusReport, error) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	report := &StatusReport{}

	group.Go(func() error {
		account, err := client.Account().Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		report.Account = account

		return nil
	})

	group.Go(func() error {
		overview, err := client.Satellites().Overview(ctx)
		if err != nil {
			return fmt.Errorf("failed to get satellite overview: %w", err)
		}

		report.Overview = overview

		return nil
	})

	group.Go(func() error {
		telescopes, err := client.Telescopes().ListMine(ctx)
		if err != nil {
			return fmt.Errorf("failed to list telescopes: %w", err)
		}

		report.Telescopes = len(telescopes)

		return nil
	})

	group.Go(func() error {
		antennas, err := client.Antennas().ListMine(ctx)
		if err != nil {
			return fmt.Errorf("failed to list antennas: %w", err)
		}

		report.Antennas = len(antennas)

		return nil
	})

	group.Go(func() error {
		stations, err := client.GroundStations().ListMine(ctx)
		if err != nil {
			return fmt.Errorf("failed to list ground stations: %w", err)
		}

		report.GroundStations = len(stations)

		return nil
	})

	group.Go(func() error {
		tasks, err := client.Tasks().ListMine(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		for _, task := range tasks {
			if task.Status == citra.TaskStatusPending || task.Status == citra.TaskStatusScheduled {
				report.PendingTasks++
			}
		}

		return nil
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return report, nil
}

func renderStatus(report *StatusReport) error {
	account := report.Account

	return renderProperties([][]string{
		{"User", account.ID},
		{"Username", stringOrNA(account.Username)},
		{"Email", stringOrNA(account.Email)},
		{"Tier", stringOrNA(account.Tier)},
		{"My Telescopes", strconv.Itoa(report.Telescopes)},
		{"My Antennas", strconv.Itoa(report.Antennas)},
		{"My Ground Stations", strconv.Itoa(report.GroundStations)},
		{"Open Tasks", strconv.Itoa(report.PendingTasks)},
		{"Active Satellites", strconv.FormatInt(report.Overview.ActiveSatelliteCount, 10)},
		{"Decayed Satellites", strconv.FormatInt(report.Overview.DecayedSatelliteCount, 10)},
	})
}
