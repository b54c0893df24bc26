package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig_AcceptsWellFormedEndpoints(t *testing.T) {
	cfg := AppConfig{
		APIHTTPURL: "https://api.example.com/graphql",
		APIWSURL:   "wss://api.example.com/graphql",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Fatalf("ValidateConfig rejected valid config: %v", err)
	}
}

func TestValidateConfig_RejectsBadEndpoints(t *testing.T) {
	cases := []struct {
		name string
		cfg  AppConfig
	}{
		{"http url with ws scheme", AppConfig{
			APIHTTPURL: "ws://api.example.com/graphql",
			APIWSURL:   "wss://api.example.com/graphql",
		}},
		{"ws url with http scheme", AppConfig{
			APIHTTPURL: "https://api.example.com/graphql",
			APIWSURL:   "https://api.example.com/graphql",
		}},
		{"missing host", AppConfig{
			APIHTTPURL: "http://",
			APIWSURL:   "wss://api.example.com/graphql",
		}},
		{"negative timeout", AppConfig{
			APIHTTPURL:      "https://api.example.com/graphql",
			APIWSURL:        "wss://api.example.com/graphql",
			APITimeoutShort: -1 * time.Second,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateConfig(nil, tc.cfg, testLogger()); err == nil {
				t.Error("ValidateConfig accepted a bad config")
			}
		})
	}
}
