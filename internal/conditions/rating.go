package conditions

// Rating is a 0-100 suitability estimate for one information source,
// with short human-readable reasons for any penalties or data problems.
type Rating struct {
	Score   int
	Reasons []string
}

// MarineData is the subset of the Open-Meteo marine API response the
// scorer consumes.
type MarineData struct {
	Daily struct {
		WaveHeightMax []float64 `json:"wave_height_max"`
	} `json:"daily"`
}

// WeatherData is the subset of the Open-Meteo forecast API response the
// scorer consumes.
type WeatherData struct {
	Hourly struct {
		Temperature2m            []float64 `json:"temperature_2m"`
		WindSpeed10m             []float64 `json:"wind_speed_10m"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
}

// Forecast is the MetService local forecast payload.
type Forecast struct {
	Days []ForecastDay `json:"days"`
}

// ForecastDay carries the short categorical forecast word plus the longer
// free-text forecast for one day.
type ForecastDay struct {
	ForecastWord string `json:"forecastWord"`
	Forecast     string `json:"forecast"`
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
