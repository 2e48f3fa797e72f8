package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopdir/config"
	"shopdir/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoderAgainst(t *testing.T, handler http.HandlerFunc, timeout time.Duration) service.ReverseGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Geocoder: &config.GeocoderConfig{
			BaseURL:   server.URL,
			UserAgent: "shopdir-test/1.0",
			Timeout:   timeout,
		},
	}

	return NewNominatimGeocoder(cfg, slog.New(slog.DiscardHandler))
}

func TestNominatimGeocoder_ResolvePlaceName(t *testing.T) {
	var gotQuery map[string]string

	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"format": r.URL.Query().Get("format"),
			"lat":    r.URL.Query().Get("lat"),
			"lon":    r.URL.Query().Get("lon"),
			"zoom":   r.URL.Query().Get("zoom"),
			"ua":     r.Header.Get("User-Agent"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"London, Greater London, England, United Kingdom"}`))
	}, 5*time.Second)

	name := geocoder.ResolvePlaceName(context.Background(), orb.Point{-0.1278, 51.5074})
	assert.Equal(t, "London, Greater London, England, United Kingdom", name)

	require.NotNil(t, gotQuery)
	assert.Equal(t, "jsonv2", gotQuery["format"])
	assert.Equal(t, "51.5074", gotQuery["lat"])
	assert.Equal(t, "-0.1278", gotQuery["lon"])
	assert.Equal(t, "18", gotQuery["zoom"])
	assert.Equal(t, "shopdir-test/1.0", gotQuery["ua"])
}

func TestNominatimGeocoder_NonSuccessStatus(t *testing.T) {
	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, 5*time.Second)

	name := geocoder.ResolvePlaceName(context.Background(), orb.Point{0, 0})
	assert.Equal(t, service.UnknownLocation, name)
}

func TestNominatimGeocoder_OracleError(t *testing.T) {
	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}, 5*time.Second)

	name := geocoder.ResolvePlaceName(context.Background(), orb.Point{0, 0})
	assert.Equal(t, service.UnknownLocation, name)
}

func TestNominatimGeocoder_MalformedResponse(t *testing.T) {
	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}, 5*time.Second)

	name := geocoder.ResolvePlaceName(context.Background(), orb.Point{0, 0})
	assert.Equal(t, service.UnknownLocation, name)
}

func TestNominatimGeocoder_EmptyDisplayName(t *testing.T) {
	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"display_name":""}`))
	}, 5*time.Second)

	name := geocoder.ResolvePlaceName(context.Background(), orb.Point{0, 0})
	assert.Equal(t, service.UnknownLocation, name)
}

func TestNominatimGeocoder_Timeout(t *testing.T) {
	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"display_name":"too late"}`))
	}, 20*time.Millisecond)

	name := geocoder.ResolvePlaceName(context.Background(), orb.Point{0, 0})
	assert.Equal(t, service.UnknownLocation, name)
}

func TestNominatimGeocoder_ContextCancelled(t *testing.T) {
	geocoder := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"display_name":"unreachable"}`))
	}, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	name := geocoder.ResolvePlaceName(ctx, orb.Point{0, 0})
	assert.Equal(t, service.UnknownLocation, name)
}
