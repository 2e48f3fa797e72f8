// Package geocode implements reverse geocoding against a Nominatim-style
// HTTP oracle. Enrichment is best-effort: every failure mode collapses to
// the sentinel place name so the write path never blocks on the oracle.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shopdir/config"
	"shopdir/internal/domain/service"

	"github.com/paulmach/orb"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org/reverse"
	defaultTimeout = 5 * time.Second
	defaultZoom    = 18
)

type nominatimGeocoder struct {
	baseURL    string
	zoom       int
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// reverseResponse is the subset of the Nominatim reverse payload we read.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error,omitempty"`
}

// NewNominatimGeocoder creates a reverse geocoder backed by a Nominatim
// endpoint. The per-call timeout comes from config and bounds the whole
// request; expiry is treated like any other failure.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.ReverseGeocoder {
	baseURL := defaultBaseURL
	userAgent := ""
	timeout := defaultTimeout
	zoom := defaultZoom
	if cfg.Geocoder != nil {
		if cfg.Geocoder.BaseURL != "" {
			baseURL = cfg.Geocoder.BaseURL
		}
		userAgent = cfg.Geocoder.UserAgent
		if cfg.Geocoder.Timeout > 0 {
			timeout = cfg.Geocoder.Timeout
		}
		if cfg.Geocoder.Zoom > 0 {
			zoom = cfg.Geocoder.Zoom
		}
	}

	return &nominatimGeocoder{
		baseURL:   baseURL,
		zoom:      zoom,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ResolvePlaceName asks the oracle for a human-readable place name.
// It never returns an error; failures are logged and downgraded to the
// sentinel value.
func (g *nominatimGeocoder) ResolvePlaceName(ctx context.Context, point orb.Point) string {
	placeName, err := g.reverse(ctx, point)
	if err != nil {
		g.logger.Warn("reverse geocoding failed, using sentinel",
			slog.Float64("latitude", point.Lat()),
			slog.Float64("longitude", point.Lon()),
			slog.Any("error", err),
		)

		return service.UnknownLocation
	}

	return placeName
}

func (g *nominatimGeocoder) reverse(ctx context.Context, point orb.Point) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	query.Set("zoom", strconv.Itoa(g.zoom))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("oracle returned non-success status: %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Error != "" {
		return "", fmt.Errorf("oracle returned error: %s", payload.Error)
	}
	if payload.DisplayName == "" {
		return "", fmt.Errorf("oracle returned empty display name")
	}

	return payload.DisplayName, nil
}
