package conditions

import "strings"

// MetService keyword scores, checked in precedence order: wet words win
// over good-weather words, which win over cloud.
var (
	wetWords   = []string{"rain", "shower"}
	clearWords = []string{"fine", "clear", "sunny"}
)

// RateMetService scores the local forecast by keyword-matching the first
// day's forecast word. The longer free-text forecast is attached as the
// reason whenever the forecast word is non-empty.
func RateMetService(fc *Forecast) Rating {
	if fc == nil || len(fc.Days) == 0 {
		return Rating{Score: 0, Reasons: []string{"No MetService data"}}
	}

	day := fc.Days[0]
	word := strings.ToLower(day.ForecastWord)

	score := 60
	switch {
	case containsAny(word, wetWords):
		score = 30
	case containsAny(word, clearWords):
		score = 90
	case strings.Contains(word, "cloud"):
		score = 60
	}

	var reasons []string
	if word != "" {
		reasons = []string{day.Forecast}
	}
	return Rating{Score: clampScore(score), Reasons: reasons}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
