// Package client wraps the two external lookup services: postal-code
// resolution and weather forecasts. Both adapters are stateless, make a
// single attempt per call and surface failures as ErrUnavailable.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eventify/eventify-go/internal/model"
)

var (
	ErrCEPNotFound = errors.New("postal code not found")
	ErrUnavailable = errors.New("external service unavailable")
)

// CEPClient resolves postal codes to full addresses with coordinates.
type CEPClient struct {
	baseURL string
	http    *http.Client
}

// NewCEPClient creates a CEPClient with a bounded request timeout.
func NewCEPClient(baseURL string, timeout time.Duration) *CEPClient {
	return &CEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type cepResponse struct {
	Address  string  `json:"address"`
	District string  `json:"district"`
	State    string  `json:"state"`
	City     string  `json:"city"`
	Status   int     `json:"status"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Resolve looks up a postal code. Dashes are stripped before transmission,
// so callers may pass either the canonical NNNNN-NNN form or bare digits.
func (c *CEPClient) Resolve(ctx context.Context, cep string) (model.AddressInfo, error) {
	digits := strings.ReplaceAll(cep, "-", "")

	url := fmt.Sprintf("%s/json/%s", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.AddressInfo{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.AddressInfo{}, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.AddressInfo{}, ErrCEPNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return model.AddressInfo{}, ErrUnavailable
	}

	var body cepResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.AddressInfo{}, ErrUnavailable
	}

	// Some CEP providers answer 200 with a status field instead of an
	// HTTP 404 for unknown codes.
	if body.Status == http.StatusNotFound {
		return model.AddressInfo{}, ErrCEPNotFound
	}

	return model.AddressInfo{
		Address:   body.Address,
		District:  body.District,
		City:      body.City,
		State:     body.State,
		Latitude:  body.Lat,
		Longitude: body.Lng,
	}, nil
}
