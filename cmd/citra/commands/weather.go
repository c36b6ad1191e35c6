package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citra-space/citra-go/pkg/citra"
)

// NewWeatherCommand creates the weather command.
func NewWeatherCommand() *cobra.Command {
	var (
		latitude  float64
		longitude float64
		units     string
	)

	cmd := &cobra.Command{
		Use:     "weather",
		Short:   "Show the weather at a location",
		Long:    "Display the current conditions and near-term precipitation forecast for a site",
		Example: `  citra weather --lat 32.44 --lon -110.79 --units metric`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateCoordinates(latitude, longitude)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			query := &citra.WeatherQuery{
				LatitudeDeg:  latitude,
				LongitudeDeg: longitude,
			}
			if units != "" {
				query.Units = &units
			}

			forecast, err := client.Weather().Get(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to get weather: %w", err)
			}

			return renderOutput(forecast, renderWeather)
		},
	}

	cmd.Flags().Float64Var(&latitude, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "longitude in degrees")
	cmd.Flags().StringVar(&units, "units", "", "units (standard, metric, imperial)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func renderWeather(forecast *citra.WeatherResponse) error {
	current := forecast.Current

	conditions := make([]string, 0, len(current.Weather))
	for _, condition := range current.Weather {
		if condition.Description != nil {
			conditions = append(conditions, *condition.Description)
		}
	}

	return renderProperties([][]string{
		{"Location", formatFloat(forecast.Lat, 4) + ", " + formatFloat(forecast.Lon, 4)},
		{"Timezone", stringOrNA(forecast.Timezone)},
		{"Conditions", joinOrNA(conditions)},
		{"Temperature", formatFloat(current.Temp, 1)},
		{"Feels Like", floatOrNA(current.FeelsLike, 1)},
		{"Humidity (%)", int64OrNA(current.Humidity)},
		{"Cloud Cover (%)", int64OrNA(current.Clouds)},
		{"Wind Speed", floatOrNA(current.WindSpeed, 1)},
		{"Next Hour", precipitationSummary(forecast.Minutely)},
	})
}

// precipitationSummary reports whether any precipitation is forecast.
func precipitationSummary(minutely []citra.MinutelyForecast) string {
	if len(minutely) == 0 {
		return valueOrNA("")
	}

	for _, minute := range minutely {
		if minute.Precipitation > 0 {
			return "precipitation expected"
		}
	}

	return "dry"
}
