// Package conditions scores upstream marine, weather, forecast, and webcam
// data for spearfishing suitability around Kaikoura, New Zealand.
//
// # Rating model
//
// Every source reduces to a Rating: an integer score clamped to 0-100 plus
// an ordered list of short human-readable reasons. A score of 0 is the
// uniform worst case, covering both genuinely bad conditions and any
// absent or malformed upstream data.
//
// # Open-Meteo (marine + weather)
//
// Starts at 100 and applies independent, cumulative penalties:
//
//	daily wave_height_max[0]             > 1.0 m    -40  "Swell {v} m"
//	hourly wind_speed_10m[0]             > 7.7 m/s  -30  "Wind {v} m/s"
//	hourly precipitation_probability[0]  > 50 %     -30  "Chance of rain"
//
// Reasons keep that order. The floor is clamped at 0. Any missing payload or
// empty series abandons all partial penalties and yields score 0 with a
// single reason naming the first field that failed; scoring on whatever
// fields did parse would overstate confidence in a half-broken feed.
//
// # MetService forecast text
//
// The short "forecastWord" of the first day drives a keyword score, checked
// in fixed precedence order:
//
//	rain, shower          30
//	fine, clear, sunny    90
//	cloud                 60
//	anything else         60
//
// The longer free-text forecast of that day is attached as a reason whenever
// the forecast word is non-empty. Absent data scores 0 with a "No MetService
// data" reason.
//
// # Webcam brightness
//
// The snapshot is decoded, converted to grayscale, and its mean pixel
// intensity bucketed: >150 scores 90, >80 scores 70, anything else 40.
// Comparisons are strict, so a mean of exactly 150 lands in the 70 bucket.
// Decode failures and absent snapshots score 0 with no reason. Known
// accuracy gap: a dead webcam and a pitch-dark one are indistinguishable in
// the aggregate, both silently contributing 0.
package conditions
