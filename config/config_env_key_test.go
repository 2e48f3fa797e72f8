package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri": "",
		},
		"geocoder": map[string]any{
			"baseUrl":   "",
			"userAgent": "",
		},
		"uploads": map[string]any{
			"publicPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "GEOCODER_BASEURL", want: "geocoder.baseUrl"},
		{envKey: "GEOCODER_USERAGENT", want: "geocoder.userAgent"},
		{envKey: "UPLOADS_PUBLICPATH", want: "uploads.publicPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
