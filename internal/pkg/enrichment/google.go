package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Service enriches production data from the Google Maps / Weather APIs.
// Every lookup is permissive: a missing API key, a network failure or an
// unusable response degrades to a nil result, never an error surfaced to
// the caller's flow. Results are cached in memory for the process lifetime.
type Service interface {
	GeocodeAddress(ctx context.Context, address string) *Coordinates
	FindNearestHospital(ctx context.Context, lat, lng float64) *Hospital
	GetWeather(ctx context.Context, lat, lng float64, date string) *Weather
}

type Coordinates struct {
	Lat              float64
	Lng              float64
	FormattedAddress string
}

type Hospital struct {
	Name    string
	Address string
}

type Weather struct {
	Date    string
	High    string
	Low     string
	Summary string
	Sunrise string
	Sunset  string
}

type serviceImpl struct {
	apiKey string
	client *http.Client

	mu           sync.Mutex
	geocodeCache map[string]*Coordinates
	weatherCache map[string]*Weather
}

func NewService(apiKey string) Service {
	return &serviceImpl{
		apiKey:       apiKey,
		client:       &http.Client{Timeout: 10 * time.Second},
		geocodeCache: make(map[string]*Coordinates),
		weatherCache: make(map[string]*Weather),
	}
}

// GeocodeAddress implements Service.
func (s *serviceImpl) GeocodeAddress(ctx context.Context, address string) *Coordinates {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" || strings.EqualFold(trimmed, "TBD") || s.apiKey == "" {
		return nil
	}

	cacheKey := strings.ToLower(trimmed)
	s.mu.Lock()
	if cached, ok := s.geocodeCache[cacheKey]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	params := url.Values{}
	params.Set("address", trimmed)
	params.Set("key", s.apiKey)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if !s.getJSON(ctx, "https://maps.googleapis.com/maps/api/geocode/json?"+params.Encode(), &payload) {
		return nil
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return nil
	}

	result := payload.Results[0]
	coords := &Coordinates{
		Lat:              result.Geometry.Location.Lat,
		Lng:              result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
	}

	s.mu.Lock()
	s.geocodeCache[cacheKey] = coords
	s.mu.Unlock()
	return coords
}

// Name fragments that indicate a clinic rather than an emergency-capable
// hospital; such results are skipped before falling back to the first hit.
var clinicKeywords = []string{"clinic", "doctor", "dental", "urgent care"}

// FindNearestHospital implements Service. Text search with a hospital query
// is more reliable than the place type filter, which returns clinics.
func (s *serviceImpl) FindNearestHospital(ctx context.Context, lat, lng float64) *Hospital {
	if s.apiKey == "" {
		return nil
	}

	params := url.Values{}
	params.Set("query", "hospital emergency room")
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", "25000")
	params.Set("type", "hospital")
	params.Set("key", s.apiKey)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Name             string `json:"name"`
			FormattedAddress string `json:"formatted_address"`
			Vicinity         string `json:"vicinity"`
		} `json:"results"`
	}
	if !s.getJSON(ctx, "https://maps.googleapis.com/maps/api/place/textsearch/json?"+params.Encode(), &payload) {
		return nil
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return nil
	}

	for _, result := range payload.Results {
		nameLower := strings.ToLower(result.Name)
		isClinic := false
		for _, kw := range clinicKeywords {
			if strings.Contains(nameLower, kw) {
				isClinic = true
				break
			}
		}
		if isClinic {
			continue
		}
		address := result.FormattedAddress
		if address == "" {
			address = result.Vicinity
		}
		return &Hospital{Name: result.Name, Address: address}
	}

	first := payload.Results[0]
	address := first.FormattedAddress
	if address == "" {
		address = first.Vicinity
	}
	return &Hospital{Name: first.Name, Address: address}
}

// GetWeather implements Service. Forecasts are only available up to ten
// days ahead; anything outside that window returns nil.
func (s *serviceImpl) GetWeather(ctx context.Context, lat, lng float64, date string) *Weather {
	if s.apiKey == "" {
		return nil
	}
	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	daysAhead := int(time.Until(target).Hours() / 24)
	if daysAhead < -1 || daysAhead > 10 {
		return nil
	}

	cacheKey := fmt.Sprintf("%.2f,%.2f,%s", lat, lng, date)
	s.mu.Lock()
	if cached, ok := s.weatherCache[cacheKey]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("location.latitude", fmt.Sprintf("%f", lat))
	params.Set("location.longitude", fmt.Sprintf("%f", lng))
	params.Set("days", "10")
	params.Set("unitsSystem", "IMPERIAL")

	var payload struct {
		TimeZone struct {
			ID string `json:"id"`
		} `json:"timeZone"`
		ForecastDays []forecastDay `json:"forecastDays"`
	}
	if !s.getJSON(ctx, "https://weather.googleapis.com/v1/forecast/days:lookup?"+params.Encode(), &payload) {
		return nil
	}
	if len(payload.ForecastDays) == 0 {
		return nil
	}

	forecast := payload.ForecastDays[0]
	for _, fd := range payload.ForecastDays {
		if fd.dateString() == date {
			forecast = fd
			break
		}
	}

	weather := &Weather{
		Date:    date,
		High:    formatDegrees(forecast.MaxTemperature.Degrees),
		Low:     formatDegrees(forecast.MinTemperature.Degrees),
		Summary: forecast.DaytimeForecast.WeatherCondition.Description.Text,
		Sunrise: formatSunEvent(forecast.SunEvents.SunriseTime, payload.TimeZone.ID),
		Sunset:  formatSunEvent(forecast.SunEvents.SunsetTime, payload.TimeZone.ID),
	}

	s.mu.Lock()
	s.weatherCache[cacheKey] = weather
	s.mu.Unlock()
	return weather
}

type forecastDay struct {
	DisplayDate struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	} `json:"displayDate"`
	MaxTemperature  degrees `json:"maxTemperature"`
	MinTemperature  degrees `json:"minTemperature"`
	DaytimeForecast struct {
		WeatherCondition struct {
			Description struct {
				Text string `json:"text"`
			} `json:"description"`
		} `json:"weatherCondition"`
	} `json:"daytimeForecast"`
	SunEvents struct {
		SunriseTime string `json:"sunriseTime"`
		SunsetTime  string `json:"sunsetTime"`
	} `json:"sunEvents"`
}

type degrees struct {
	Degrees *float64 `json:"degrees"`
}

func (f forecastDay) dateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", f.DisplayDate.Year, f.DisplayDate.Month, f.DisplayDate.Day)
}

func formatDegrees(d *float64) string {
	if d == nil {
		return "TBD"
	}
	return fmt.Sprintf("%.0fF", *d)
}

// formatSunEvent converts an RFC3339 UTC timestamp to a local 12-hour
// string. An unknown timezone falls back to UTC rather than dropping the
// value.
func formatSunEvent(iso, timezoneID string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	if timezoneID != "" {
		if loc, err := time.LoadLocation(timezoneID); err == nil {
			t = t.In(loc)
		}
	}
	formatted := t.Format("3:04 PM")
	return formatted
}

func (s *serviceImpl) getJSON(ctx context.Context, rawURL string, out interface{}) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("enrichment request failed", slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("enrichment request returned non-OK status", slog.Int("status", resp.StatusCode))
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Warn("enrichment response decode failed", slog.String("error", err.Error()))
		return false
	}
	return true
}
