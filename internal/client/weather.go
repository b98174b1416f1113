package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eventify/eventify-go/internal/model"
)

// forecastDays is the fixed horizon of the daily weather series.
const forecastDays = 14

const dailyFields = "temperature_2m_max,temperature_2m_min,apparent_temperature_max," +
	"apparent_temperature_min,precipitation_probability_max,wind_speed_10m_max," +
	"wind_gusts_10m_max,wind_direction_10m_dominant,precipitation_hours"

// WeatherClient fetches daily weather forecasts for a coordinate pair.
type WeatherClient struct {
	baseURL string
	http    *http.Client
}

// NewWeatherClient creates a WeatherClient with a bounded request timeout.
func NewWeatherClient(baseURL string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type dailySeries struct {
	Time                        []string  `json:"time"`
	MaxTemperature              []float64 `json:"temperature_2m_max"`
	MinTemperature              []float64 `json:"temperature_2m_min"`
	ApparentMaxTemperature      []float64 `json:"apparent_temperature_max"`
	ApparentMinTemperature      []float64 `json:"apparent_temperature_min"`
	MaxPrecipitationProbability []int     `json:"precipitation_probability_max"`
	MaxWindSpeed                []float64 `json:"wind_speed_10m_max"`
	MaxWindGusts                []float64 `json:"wind_gusts_10m_max"`
	DominantWindDirection       []int     `json:"wind_direction_10m_dominant"`
	PrecipitationHours          []float64 `json:"precipitation_hours"`
}

type forecastResponse struct {
	Daily dailySeries `json:"daily"`
}

// Forecast fetches the 14-day daily series for the given coordinates.
func (c *WeatherClient) Forecast(ctx context.Context, latitude, longitude float64) ([]model.DailyForecast, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("daily", dailyFields)
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnavailable
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ErrUnavailable
	}

	return toDailyForecasts(body.Daily), nil
}

// toDailyForecasts converts the column-oriented provider response to one
// record per day, tolerating short series.
func toDailyForecasts(d dailySeries) []model.DailyForecast {
	days := make([]model.DailyForecast, len(d.Time))
	for i := range d.Time {
		days[i].Date = d.Time[i]
		if i < len(d.MaxTemperature) {
			days[i].MaxTemperature = d.MaxTemperature[i]
		}
		if i < len(d.MinTemperature) {
			days[i].MinTemperature = d.MinTemperature[i]
		}
		if i < len(d.ApparentMaxTemperature) {
			days[i].ApparentMaxTemperature = d.ApparentMaxTemperature[i]
		}
		if i < len(d.ApparentMinTemperature) {
			days[i].ApparentMinTemperature = d.ApparentMinTemperature[i]
		}
		if i < len(d.MaxPrecipitationProbability) {
			days[i].MaxPrecipitationProbability = d.MaxPrecipitationProbability[i]
		}
		if i < len(d.MaxWindSpeed) {
			days[i].MaxWindSpeed = d.MaxWindSpeed[i]
		}
		if i < len(d.MaxWindGusts) {
			days[i].MaxWindGusts = d.MaxWindGusts[i]
		}
		if i < len(d.DominantWindDirection) {
			days[i].DominantWindDirection = d.DominantWindDirection[i]
		}
		if i < len(d.PrecipitationHours) {
			days[i].PrecipitationHours = d.PrecipitationHours[i]
		}
	}
	return days
}
