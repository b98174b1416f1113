package model

// AddressInfo is the result of resolving a postal code: the full address
// plus the coordinates used for weather lookups.
type AddressInfo struct {
	Address   string
	District  string
	City      string
	State     string
	Latitude  float64
	Longitude float64
}

// DailyForecast is one day of the aggregated weather series.
type DailyForecast struct {
	Date                        string  `json:"date"`
	MaxTemperature              float64 `json:"maxTemperature"`
	MinTemperature              float64 `json:"minTemperature"`
	ApparentMaxTemperature      float64 `json:"apparentMaxTemperature"`
	ApparentMinTemperature      float64 `json:"apparentMinTemperature"`
	MaxPrecipitationProbability int     `json:"maxPrecipitationProbability"`
	MaxWindSpeed                float64 `json:"maxWindSpeed"`
	MaxWindGusts                float64 `json:"maxWindGusts"`
	DominantWindDirection       int     `json:"dominantWindDirection"`
	PrecipitationHours          float64 `json:"precipitationHours"`
}
