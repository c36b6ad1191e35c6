package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
)

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Long:    "Create, inspect and update observation tasks",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksCreateCommand())
	cmd.AddCommand(newTasksUpdateCommand())
	cmd.AddCommand(newTasksFleetCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your tasks",
		Long:    "List the tasks created by the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tasks, err := client.Tasks().ListMine(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			tasks, err = applyFilter(tasks, filter)
			if err != nil {
				return err
			}

			return renderOutput(tasks, renderTasksTable)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "expression evaluated against each task's fields")

	return cmd
}

func newTasksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TASK_ID",
		Short: "Get task details",
		Long:  "Display detailed information about a specific task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			task, err := client.Tasks().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			return renderOutput(task, renderTaskDetails)
		},
	}
}

func newTasksCreateCommand() *cobra.Command {
	var (
		telescopeID string
		antennaID   string
		satelliteID string
		start       string
		stop        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Long:  "Ask a telescope or antenna to observe a satellite during a time window",
		Example: `  citra tasks create --telescope 0a1b2c --satellite 25544 \
    --start 2025-01-01T02:00:00Z --stop 2025-01-01T02:10:00Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := buildCreateTaskRequest(telescopeID, antennaID, satelliteID, start, stop)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			task, err := client.Tasks().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			return renderOutput(task, renderTaskDetails)
		},
	}

	cmd.Flags().StringVar(&telescopeID, "telescope", "", "telescope ID")
	cmd.Flags().StringVar(&antennaID, "antenna", "", "antenna ID")
	cmd.Flags().StringVar(&satelliteID, "satellite", "", "satellite ID")
	cmd.Flags().StringVar(&start, "start", "", "window start (RFC 3339)")
	cmd.Flags().StringVar(&stop, "stop", "", "window stop (RFC 3339)")
	_ = cmd.MarkFlagRequired("satellite")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("stop")
	cmd.MarkFlagsOneRequired("telescope", "antenna")
	cmd.MarkFlagsMutuallyExclusive("telescope", "antenna")

	return cmd
}

func newTasksUpdateCommand() *cobra.Command {
	var (
		status   string
		priority int32
	)

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Update a task",
		Long:  "Change the status or priority of a task. Unchanged fields keep their current values.",
		Example: `  citra tasks update 0a1b2c --status Canceled
  citra tasks update 0a1b2c --priority 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statusSet := cmd.Flags().Changed("status")
			prioritySet := cmd.Flags().Changed("priority")

			if !statusSet && !prioritySet {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			current, err := client.Tasks().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			request, err := buildTaskUpdateRequest(current, statusSet, status, prioritySet, priority)
			if err != nil {
				return err
			}

			task, err := client.Tasks().Update(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			return renderOutput(task, renderTaskDetails)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status ("+joinStatuses()+")")
	cmd.Flags().Int32Var(&priority, "priority", 0, "new priority")

	return cmd
}

func newTasksFleetCommand() *cobra.Command {
	var statuses []string

	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "List tasks across all of your telescopes and antennas",
		Long: `Fetch the tasks of every telescope and antenna you own concurrently and
print them in one table, ordered by task start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseTaskStatuses(statuses)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tasks, err := collectFleetTasks(cmd.Context(), client, parsed)
			if err != nil {
				return err
			}

			return renderOutput(tasks, renderTasksTable)
		},
	}

	cmd.Flags().StringSliceVarP(&statuses, "status", "s",
		[]string{citra.TaskStatusPending.String(), citra.TaskStatusScheduled.String()},
		"task status to include (repeatable)")

	return cmd
}

// fleetSensor is one telescope or antenna whose tasks are fetched.
type fleetSensor struct {
	kind string
	id   string
	list func(ctx context.Context, id string, statuses []citra.TaskStatus) ([]citra.Task, error)
}

// collectFleetTasks lists the tasks of every telescope and antenna the user
// owns, fetching each sensor concurrently, ordered by task start.
func collectFleetTasks(ctx context.Context, client citra.Client, statuses []citra.TaskStatus) ([]citra.Task, error) {
	sensors, err := listFleetSensors(ctx, client)
	if err != nil {
		return nil, err
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	var (
		mutex sync.Mutex
		tasks []citra.Task
	)

	for _, sensor := range sensors {
		group.Go(func() error {
			found, err := sensor.list(ctx, sensor.id, statuses)
			if err != nil {
				return fmt.Errorf("failed to list tasks for %s %s: %w", sensor.kind, sensor.id, err)
			}

			log.Debug().Str(sensor.kind, sensor.id).Int("tasks", len(found)).Msg("Fetched sensor tasks")

			mutex.Lock()
			tasks = append(tasks, found...)
			mutex.Unlock()

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}

	sortTasks(tasks)

	return tasks, nil
}

// listFleetSensors fetches the user's telescopes and antennas concurrently.
func listFleetSensors(ctx context.Context, client citra.Client) ([]fleetSensor, error) {
	var (
		telescopes []citra.Telescope
		antennas   []citra.Antenna
	)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error

		telescopes, err = client.Telescopes().ListMine(ctx)
		if err != nil {
			return fmt.Errorf("failed to list telescopes: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		var err error

		antennas, err = client.Antennas().ListMine(ctx)
		if err != nil {
			return fmt.Errorf("failed to list antennas: %w", err)
		}

		return nil
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	sensors := make([]fleetSensor, 0, len(telescopes)+len(antennas))

	for _, telescope := range telescopes {
		sensors = append(sensors, fleetSensor{kind: "telescope", id: telescope.ID, list: client.Telescopes().ListTasksByStatus})
	}

	for _, antenna := range antennas {
		sensors = append(sensors, fleetSensor{kind: "antenna", id: antenna.ID, list: client.Antennas().ListTasksByStatus})
	}

	return sensors, nil
}

// parseTaskStatuses converts --status values, accepting any letter case.
func parseTaskStatuses(values []string) ([]citra.TaskStatus, error) {
	statuses := make([]citra.TaskStatus, 0, len(values))

	for _, value := range values {
		status, err := parseTaskStatus(value)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

func parseTaskStatus(value string) (citra.TaskStatus, error) {
	for _, status := range citra.TaskStatuses {
		if strings.EqualFold(status.String(), strings.TrimSpace(value)) {
			return status, nil
		}
	}

	return citra.ParseTaskStatus(value)
}

func joinStatuses() string {
	names := make([]string, 0, len(citra.TaskStatuses))
	for _, status := range citra.TaskStatuses {
		names = append(names, status.String())
	}

	return strings.Join(names, ", ")
}

func buildCreateTaskRequest(telescopeID, antennaID, satelliteID, start, stop string) (*citra.CreateTaskRequest, error) {
	taskStart, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, fmt.Errorf("invalid --start: %w", err)
	}

	taskStop, err := time.Parse(time.RFC3339, stop)
	if err != nil {
		return nil, fmt.Errorf("invalid --stop: %w", err)
	}

	request := &citra.CreateTaskRequest{
		SatelliteID: satelliteID,
		TaskStart:   taskStart,
		TaskStop:    taskStop,
	}

	if telescopeID != "" {
		request.TelescopeID = &telescopeID
	}

	if antennaID != "" {
		request.AntennaID = &antennaID
	}

	return request, nil
}

// buildTaskUpdateRequest starts from the task's current state so that a
// priority-only change keeps the status.
func buildTaskUpdateRequest(
	current *citra.Task, statusSet bool, status string, prioritySet bool, priority int32,
) (*citra.TaskUpdateRequest, error) {
	request := &citra.TaskUpdateRequest{
		ID:             current.ID,
		Status:         current.Status,
		ScheduledStart: current.ScheduledStart,
		ScheduledStop:  current.ScheduledStop,
	}

	if statusSet {
		parsed, err := parseTaskStatus(status)
		if err != nil {
			return nil, err
		}

		request.Status = parsed
	}

	if prioritySet {
		if priority < 0 {
			return nil, fmt.Errorf("%w: %d", constants.ErrInvalidPriority, priority)
		}

		request.Priority = &priority
	}

	return request, nil
}

func sortTasks(tasks []citra.Task) {
	slices.SortStableFunc(tasks, func(a, b citra.Task) int {
		return a.TaskStart.Compare(b.TaskStart)
	})
}

func renderTasksTable(tasks []citra.Task) error {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")

		return nil
	}

	table := newTable("ID", "Status", "Satellite", "Telescope", "Start", "Stop", "Priority")

	for _, task := range tasks {
		satellite := task.SatelliteID
		if task.SatelliteName != nil {
			satellite = *task.SatelliteName
		}

		telescope := task.TelescopeID
		if task.TelescopeName != nil {
			telescope = *task.TelescopeName
		}

		_ = table.Append(
			task.ID,
			task.Status.String(),
			satellite,
			telescope,
			formatTime(task.TaskStart),
			formatTime(task.TaskStop),
			fmt.Sprintf("%d", task.Priority),
		)
	}

	return renderTable(table)
}

func renderTaskDetails(task *citra.Task) error {
	return renderProperties([][]string{
		{"ID", task.ID},
		{"Type", task.Type},
		{"Status", task.Status.String()},
		{"Priority", fmt.Sprintf("%d", task.Priority)},
		{"Satellite", task.SatelliteID + " (" + stringOrNA(task.SatelliteName) + ")"},
		{"Telescope", task.TelescopeID + " (" + stringOrNA(task.TelescopeName) + ")"},
		{"Ground Station", task.GroundStationID + " (" + stringOrNA(task.GroundStationName) + ")"},
		{"Window", formatTime(task.TaskStart) + " to " + formatTime(task.TaskStop)},
		{"Scheduled Start", timeOrNA(task.ScheduledStart)},
		{"Scheduled Stop", timeOrNA(task.ScheduledStop)},
		{"Range (km)", floatOrNA(task.RangeKm, 1)},
		{"Right Ascension (deg)", floatOrNA(task.RightAscension, 4)},
		{"Declination (deg)", floatOrNA(task.Declination, 4)},
		{"Created", formatTime(task.CreationEpoch)},
		{"Updated", formatTime(task.UpdateEpoch)},
	})
}
