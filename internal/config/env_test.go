package config

import "testing"

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv(EnvTelemetryDSN, "")
	t.Setenv(EnvDebug, "")

	env := LoadEnv()

	if env.TelemetryDSN != "" {
		t.Errorf("Expected empty telemetry DSN, got '%s'", env.TelemetryDSN)
	}

	if env.Debug {
		t.Error("Expected debug to default to false")
	}

	if env.TelemetryConfigured() {
		t.Error("Expected telemetry to be unconfigured without a DSN")
	}
}

func TestLoadEnv_Values(t *testing.T) {
	t.Setenv(EnvTelemetryDSN, "https://key@o0.ingest.sentry.io/0")
	t.Setenv(EnvDebug, "true")

	env := LoadEnv()

	if env.TelemetryDSN != "https://key@o0.ingest.sentry.io/0" {
		t.Errorf("Unexpected telemetry DSN: '%s'", env.TelemetryDSN)
	}

	if !env.Debug {
		t.Error("Expected debug to be true")
	}

	if !env.TelemetryConfigured() {
		t.Error("Expected telemetry to be configured with a DSN")
	}
}

func TestLoadEnv_DebugParsing(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"false", false},
		{"not-a-bool", false},
	}

	for _, test := range tests {
		t.Setenv(EnvDebug, test.value)
		env := LoadEnv()
		if env.Debug != test.expected {
			t.Errorf("LoadEnv() with %s='%s' debug = %v, expected %v",
				EnvDebug, test.value, env.Debug, test.expected)
		}
	}
}
