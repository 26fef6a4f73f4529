// Package webcam fetches coastal webcam snapshots around Kaikoura.
package webcam

import (
	"context"

	"spearo/internal/fetch"
)

// Known cam URLs. CawthronEye is the default; the others exist as
// alternates and can be selected via WEBCAM_URL. They change occasionally
// and any of them can be offline.
const (
	CawthronEyeURL = "https://coastalcams.cawthron.org.nz/current.jpg"
	KutaiCamURL    = "https://www.kutai.cam/current.jpg"
	TascamURL      = "https://tascam.example.com/latest.jpg"
)

// Client fetches a snapshot from a single configured webcam.
type Client struct {
	fetcher *fetch.Client
	url     string
}

// NewClient creates a webcam client for the given snapshot URL.
func NewClient(fetcher *fetch.Client, url string) *Client {
	if url == "" {
		url = CawthronEyeURL
	}
	return &Client{fetcher: fetcher, url: url}
}

// Snapshot returns the current webcam frame, or (nil, false) when the cam
// is unreachable.
func (c *Client) Snapshot(ctx context.Context) ([]byte, bool) {
	return c.fetcher.Bytes(ctx, c.url)
}
