package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eventify/eventify-go/internal/client"
	"github.com/eventify/eventify-go/internal/model"
)

func TestEventForecast(t *testing.T) {
	resolver := &stubResolver{info: testAddress}
	weather := &stubWeather{days: []model.DailyForecast{{Date: "2026-03-10", MaxTemperature: 27.5}}}
	svc := NewForecastService(resolver, weather)

	event := &model.Event{CEP: "01310-100", Address: "stale address"}

	days, err := svc.EventForecast(context.Background(), event)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2026-03-10" {
		t.Errorf("unexpected forecast %v", days)
	}
	if resolver.calls != 1 {
		t.Errorf("the cep must be re-resolved at read time, got %d calls", resolver.calls)
	}
	if weather.lat != testAddress.Latitude || weather.lng != testAddress.Longitude {
		t.Errorf("forecast must use the freshly resolved coordinates, got %v,%v", weather.lat, weather.lng)
	}
}

func TestEventForecast_ResolverFailurePropagates(t *testing.T) {
	resolver := &stubResolver{err: client.ErrUnavailable}
	weather := &stubWeather{}
	svc := NewForecastService(resolver, weather)

	_, err := svc.EventForecast(context.Background(), &model.Event{CEP: "01310-100"})
	if !errors.Is(err, client.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if weather.calls != 0 {
		t.Error("weather provider must not be called when resolution fails")
	}
	if resolver.calls != 1 {
		t.Errorf("failures are never retried, got %d calls", resolver.calls)
	}
}

func TestEventForecast_WeatherFailurePropagates(t *testing.T) {
	resolver := &stubResolver{info: testAddress}
	weather := &stubWeather{err: client.ErrUnavailable}
	svc := NewForecastService(resolver, weather)

	_, err := svc.EventForecast(context.Background(), &model.Event{CEP: "01310-100"})
	if !errors.Is(err, client.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if weather.calls != 1 {
		t.Errorf("failures are never retried, got %d calls", weather.calls)
	}
}
