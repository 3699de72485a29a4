package openweather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/skyreport/skyreport/internal/config"
	"github.com/skyreport/skyreport/internal/weather"
	"github.com/skyreport/skyreport/pkg/display"
)

const currentLondonJSON = `{
	"name": "London",
	"main": {"temp": 15.2, "feels_like": 14.1, "temp_min": 12.0, "temp_max": 17.3, "humidity": 60, "pressure": 1012},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"wind": {"speed": 4.6, "deg": 250},
	"clouds": {"all": 75},
	"sys": {"country": "GB", "sunrise": 1687315000, "sunset": 1687375000},
	"timezone": 3600,
	"visibility": 10000,
	"dt": 1687322580
}`

const forecastLondonJSON = `{
	"list": [
		{
			"dt": 1687322580,
			"main": {"temp": 16.0, "feels_like": 15.5, "temp_min": 14.8, "temp_max": 16.4, "humidity": 58, "pressure": 1013},
			"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
			"wind": {"speed": 3.9, "deg": 240},
			"clouds": {"all": 80},
			"pop": 0.6
		},
		{
			"dt": 1687333380,
			"main": {"temp": 17.2, "feels_like": 16.8, "temp_min": 15.9, "temp_max": 17.8, "humidity": 52, "pressure": 1014},
			"weather": [{"id": 801, "main": "Clouds", "description": "few clouds", "icon": "02d"}],
			"wind": {"speed": 3.2, "deg": 235},
			"clouds": {"all": 30}
		}
	]
}`

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(config.ProviderConfig{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		Timeout:   10,
		RateLimit: 1000,
		Burst:     1000,
	}, zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.ProviderConfig{
		BaseURL: "https://api.openweathermap.org/data/2.5",
		Timeout: 10,
	}, zap.NewNop(), nil)
	if err == nil {
		t.Fatal("expected construction to fail without an API key")
	}
}

func TestClientCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/weather") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "London" || q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, currentLondonJSON)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	current, err := client.Current(context.Background(), "London", weather.Metric)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if current.Temperature != 15.2 {
		t.Errorf("Temperature = %v, want 15.2", current.Temperature)
	}
	if current.Humidity != 60 {
		t.Errorf("Humidity = %d, want 60", current.Humidity)
	}
	if current.VisibilityKM != 10 {
		t.Errorf("VisibilityKM = %v, want 10", current.VisibilityKM)
	}
	if icon := display.Icon(current.ConditionID, current.Description); icon != display.IconRain {
		t.Errorf("icon for code %d = %q, want rain icon", current.ConditionID, icon)
	}
}

func TestClientCurrentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"cod":"404","message":"city not found"}`)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	_, err := client.Current(context.Background(), "Nonexistent City123", weather.Metric)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if kind := weather.KindOf(err); kind != weather.KindNotFound {
		t.Errorf("error kind = %v, want not_found", kind)
	}
	if err.Error() != "City 'Nonexistent City123' not found" {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestClientCurrentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"cod":"500","message":"internal error"}`)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	_, err := client.Current(context.Background(), "London", weather.Metric)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if kind := weather.KindOf(err); kind != weather.KindTransport {
		t.Errorf("error kind = %v, want transport", kind)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error message %q should carry the status", err.Error())
	}
}

func TestClientCurrentConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := testClient(t, srv.URL)

	_, err := client.Current(context.Background(), "London", weather.Metric)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if kind := weather.KindOf(err); kind != weather.KindTransport {
		t.Errorf("error kind = %v, want transport", kind)
	}
}

func TestClientCurrentIncompletePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No weather conditions array.
		fmt.Fprint(w, `{"name":"London","main":{"temp":15.2},"wind":{"speed":4.6},"clouds":{"all":75},"sys":{"country":"GB"},"timezone":3600}`)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	current, err := client.Current(context.Background(), "London", weather.Metric)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if current != nil {
		t.Errorf("expected no partial record, got %+v", current)
	}
	if kind := weather.KindOf(err); kind != weather.KindParse {
		t.Errorf("error kind = %v, want parse", kind)
	}
}

func TestClientForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/forecast") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, forecastLondonJSON)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)

	points, err := client.Forecast(context.Background(), "London", weather.Metric)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Pop != 60 {
		t.Errorf("Pop = %v, want 60", points[0].Pop)
	}
	if points[1].Pop != 0 {
		t.Errorf("Pop = %v, want default 0", points[1].Pop)
	}
	if points[0].Timestamp >= points[1].Timestamp {
		t.Error("forecast points must stay in chronological order")
	}
}
