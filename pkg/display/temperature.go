package display

// CelsiusToFahrenheit converts a temperature already fetched in metric
// units, for callers that do not want to re-fetch in the other system.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}
