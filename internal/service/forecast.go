package service

import (
	"context"

	"github.com/eventify/eventify-go/internal/model"
)

// ForecastService composes the address resolver and the weather provider
// to answer "what is the forecast for this event's location".
type ForecastService struct {
	resolver AddressResolver
	weather  WeatherProvider
}

// NewForecastService creates a new ForecastService.
func NewForecastService(resolver AddressResolver, weather WeatherProvider) *ForecastService {
	return &ForecastService{resolver: resolver, weather: weather}
}

// EventForecast returns the 14-day daily forecast for the event's
// location. The postal code is resolved fresh at read time to obtain
// coordinates; the stored address is deliberately not treated as a cache.
// Resolver and provider failures propagate untouched and are never
// retried here.
func (s *ForecastService) EventForecast(ctx context.Context, event *model.Event) ([]model.DailyForecast, error) {
	info, err := s.resolver.Resolve(ctx, event.CEP)
	if err != nil {
		return nil, err
	}
	return s.weather.Forecast(ctx, info.Latitude, info.Longitude)
}
