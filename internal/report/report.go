// Package report aggregates per-source condition ratings into the emailed
// spearfishing update.
package report

import (
	"fmt"
	"strings"

	"spearo/internal/conditions"
)

// Subject is the fixed subject line of every update email.
const Subject = "Spearfishing update"

// Report combines the three source ratings for one scheduled run. It lives
// only long enough to render into an email body.
type Report struct {
	OpenMeteo  conditions.Rating
	MetService conditions.Rating
	Webcam     conditions.Rating
	Overall    int
}

// Build computes the overall score as the truncated arithmetic mean of the
// three source scores. Truncation, not rounding: (90+60+41)/3 is 63.
func Build(openMeteo, metService, webcam conditions.Rating) Report {
	return Report{
		OpenMeteo:  openMeteo,
		MetService: metService,
		Webcam:     webcam,
		Overall:    (openMeteo.Score + metService.Score + webcam.Score) / 3,
	}
}

// Reasons concatenates the reasons of the two textual sources in source
// order. The webcam contributes to the overall score but never to reasons.
func (r Report) Reasons() []string {
	var reasons []string
	reasons = append(reasons, r.OpenMeteo.Reasons...)
	reasons = append(reasons, r.MetService.Reasons...)
	return reasons
}

// Render produces the plain-text email body: one line per source rating,
// the overall rating, and a Reasons block when any were collected.
func (r Report) Render() string {
	lines := []string{
		fmt.Sprintf("Open-Meteo rating: %d", r.OpenMeteo.Score),
		fmt.Sprintf("MetService rating: %d", r.MetService.Score),
		fmt.Sprintf("CawthronEye rating: %d", r.Webcam.Score),
		fmt.Sprintf("Overall rating: %d", r.Overall),
	}
	if reasons := r.Reasons(); len(reasons) > 0 {
		lines = append(lines, "Reasons:")
		lines = append(lines, reasons...)
	}
	return strings.Join(lines, "\n")
}
