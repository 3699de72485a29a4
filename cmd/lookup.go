package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyreport/skyreport/internal/config"
	"github.com/skyreport/skyreport/internal/openweather"
	"github.com/skyreport/skyreport/internal/weather"
	"github.com/skyreport/skyreport/pkg/display"
)

var (
	lookupUnits string
	lookupCmd   = &cobra.Command{
		Use:   "lookup <city>",
		Short: "Fetch and print weather for a city",
		Long:  `Fetch current conditions and the 5-day forecast for a city and print them to the terminal.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}
)

func init() {
	lookupCmd.Flags().StringVarP(&lookupUnits, "units", "u", "metric", "unit system: metric or imperial")
}

func runLookup(cmd *cobra.Command, args []string) error {
	units := weather.Units(lookupUnits)
	if !units.Valid() {
		return fmt.Errorf("invalid units %q: must be 'metric' or 'imperial'", lookupUnits)
	}

	city := strings.Join(args, " ")
	cfg := config.GetConfig()

	client, err := openweather.NewClient(cfg.Provider, log, tele)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Current conditions first; when this fails the forecast is not
	// fetched at all.
	current, err := client.Current(ctx, city, units)
	if err != nil {
		return err
	}

	printCurrent(current, units)

	forecast, err := client.Forecast(ctx, city, units)
	if err != nil {
		// Current conditions were already printed, a forecast failure
		// does not discard them.
		fmt.Printf("\nForecast unavailable: %v\n", err)
		return nil
	}

	printForecast(forecast, units)
	return nil
}

func printCurrent(w *weather.CurrentWeather, units weather.Units) {
	tempSym := units.TemperatureSymbol()

	fmt.Printf("%s  %s, %s\n", display.Icon(w.ConditionID, w.Description), w.City, w.Country)
	fmt.Printf("   %s - %s\n", w.Condition, w.Description)
	fmt.Printf("   Temperature: %.1f%s (feels like %.1f%s, min %.1f%s, max %.1f%s)\n",
		w.Temperature, tempSym, w.FeelsLike, tempSym, w.TempMin, tempSym, w.TempMax, tempSym)
	fmt.Printf("   Humidity: %d%%   Pressure: %d hPa   Clouds: %d%%\n", w.Humidity, w.Pressure, w.Clouds)
	fmt.Printf("   Wind: %.1f %s %s\n", w.WindSpeed, units.WindSpeedUnit(), display.WindDirection(w.WindDeg))
	fmt.Printf("   Visibility: %.1f km\n", w.VisibilityKM)
	fmt.Printf("   Sunrise: %s   Sunset: %s\n",
		display.FormatTime(w.Sunrise, w.TimezoneOffset),
		display.FormatTime(w.Sunset, w.TimezoneOffset))
}

func printForecast(points []weather.ForecastPoint, units weather.Units) {
	fmt.Println("\n5-day forecast:")

	lastDate := ""
	for _, p := range points {
		date := display.FormatDate(p.Timestamp)
		if date != lastDate {
			fmt.Printf("\n%s\n", date)
			lastDate = date
		}
		fmt.Printf("  %s  %s  %6.1f%s  pop %3.0f%%  %s\n",
			display.FormatTime(p.Timestamp, 0),
			display.Icon(p.ConditionID, p.Description),
			p.Temperature, units.TemperatureSymbol(),
			p.Pop,
			p.Description)
	}
}
