package conditions

import (
	"errors"
	"strconv"
)

// Open-Meteo penalty thresholds and weights.
const (
	maxComfortableSwell = 1.0 // metres
	maxComfortableWind  = 7.7 // m/s
	maxDryPrecipChance  = 50  // percent

	swellPenalty  = 40
	windPenalty   = 30
	precipPenalty = 30
)

// RateOpenMeteo scores the combined marine and weather payloads. Penalties
// are cumulative and independent; the score floors at 0. If any required
// field is missing the whole source is nullified: partial penalties are
// abandoned and the result is score 0 with a single parse-failure reason.
func RateOpenMeteo(marine *MarineData, weather *WeatherData) Rating {
	waveHeight, err := firstMarineWaveHeight(marine)
	if err != nil {
		return parseFailure(err)
	}
	windSpeed, precipChance, err := firstWindAndPrecip(weather)
	if err != nil {
		return parseFailure(err)
	}

	score := 100
	var reasons []string

	if waveHeight > maxComfortableSwell {
		score -= swellPenalty
		reasons = append(reasons, "Swell "+formatValue(waveHeight)+" m")
	}
	if windSpeed > maxComfortableWind {
		score -= windPenalty
		reasons = append(reasons, "Wind "+formatValue(windSpeed)+" m/s")
	}
	if precipChance > maxDryPrecipChance {
		score -= precipPenalty
		reasons = append(reasons, "Chance of rain")
	}

	return Rating{Score: clampScore(score), Reasons: reasons}
}

func firstMarineWaveHeight(marine *MarineData) (float64, error) {
	if marine == nil {
		return 0, errors.New("no marine data")
	}
	if len(marine.Daily.WaveHeightMax) == 0 {
		return 0, errors.New("daily wave_height_max is empty")
	}
	return marine.Daily.WaveHeightMax[0], nil
}

func firstWindAndPrecip(weather *WeatherData) (wind, precip float64, err error) {
	if weather == nil {
		return 0, 0, errors.New("no weather data")
	}
	if len(weather.Hourly.WindSpeed10m) == 0 {
		return 0, 0, errors.New("hourly wind_speed_10m is empty")
	}
	if len(weather.Hourly.PrecipitationProbability) == 0 {
		return 0, 0, errors.New("hourly precipitation_probability is empty")
	}
	return weather.Hourly.WindSpeed10m[0], weather.Hourly.PrecipitationProbability[0], nil
}

func parseFailure(err error) Rating {
	return Rating{Score: 0, Reasons: []string{"Failed to parse data: " + err.Error()}}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
