package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/citra-space/citra-go/internal/constants"
)

const (
	// YAML indentation.
	defaultYAMLIndent = 2

	// Display time layout.
	displayTimeLayout = "2006-01-02 15:04:05Z07:00"
)

// StandardJSONRenderer writes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderOutput writes data in the format selected by --output, falling back
// to the table renderer.
func renderOutput[T any](data T, table func(T) error) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(data)
	default:
		return table(data)
	}
}

// ValidateOutputFormat rejects unknown --output values.
func ValidateOutputFormat(format string) error {
	switch format {
	case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// newTable creates a table on stdout with the given header.
func newTable(header ...any) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header...)

	return table
}

func renderTable(table *tablewriter.Table) error {
	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties prints a two column Property/Value table.
func renderProperties(rows [][]string) error {
	table := newTable("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row)
	}

	return renderTable(table)
}

func stringOrNA(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func floatOrNA(value *float64, precision int) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatFloat(*value, 'f', precision, 64)
}

func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return constants.NotAvailable
	}

	return value.UTC().Format(displayTimeLayout)
}

func timeOrNA(value *time.Time) string {
	if value == nil {
		return constants.NotAvailable
	}

	return formatTime(*value)
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(secret string) string {
	const visible = 4

	if len(secret) <= visible {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-visible:]
}

// kilometers converts a ground station altitude in meters for display.
func kilometers(meters float64) string {
	return formatFloat(meters/constants.MetersPerKilometer, 3)
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}
