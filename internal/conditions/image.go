package conditions

import (
	"bytes"
	"image"
	"image/color"

	// Webcams serve JPEG; PNG and GIF are registered for resilience against
	// a cam operator swapping formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Brightness buckets for the webcam snapshot. Comparisons are strict, so a
// mean of exactly brightDayMin falls into the middle bucket.
const (
	brightDayMin = 150
	overcastMin  = 80
)

// RateImage scores a webcam snapshot by mean grayscale brightness. Absent
// input and undecodable bytes both score 0; image ratings never carry
// reasons, so a dead cam is indistinguishable from a dark one downstream.
func RateImage(data []byte) Rating {
	if len(data) == 0 {
		return Rating{Score: 0}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Rating{Score: 0}
	}

	mean, ok := meanBrightness(img)
	if !ok {
		return Rating{Score: 0}
	}

	switch {
	case mean > brightDayMin:
		return Rating{Score: 90}
	case mean > overcastMin:
		return Rating{Score: 70}
	default:
		return Rating{Score: 40}
	}
}

// meanBrightness averages the 8-bit grayscale intensity over the full image.
// Returns false for degenerate zero-pixel images.
func meanBrightness(img image.Image) (float64, bool) {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels <= 0 {
		return 0, false
	}

	var sum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			sum += uint64(gray.Y)
		}
	}
	return float64(sum) / float64(pixels), true
}
