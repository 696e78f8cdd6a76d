package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}

	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}

	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfig verifies environment overrides
func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		enabled bool
		volume  float64
		rate    int
	}{
		{"defaults", nil, true, 1.0, 44100},
		{"disabled", map[string]string{"PORTFOLIO_AUDIO_ENABLED": "false"}, false, 1.0, 44100},
		{"volume", map[string]string{"PORTFOLIO_MASTER_VOLUME": "40"}, true, 0.4, 44100},
		{"volume_clamped", map[string]string{"PORTFOLIO_MASTER_VOLUME": "250"}, true, 1.0, 44100},
		{"volume_negative", map[string]string{"PORTFOLIO_MASTER_VOLUME": "-5"}, true, 0, 44100},
		{"rate", map[string]string{"PORTFOLIO_SAMPLE_RATE": "48000"}, true, 1.0, 48000},
		{"garbage_ignored", map[string]string{
			"PORTFOLIO_AUDIO_ENABLED": "maybe",
			"PORTFOLIO_MASTER_VOLUME": "loud",
			"PORTFOLIO_SAMPLE_RATE":   "-1",
		}, true, 1.0, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORTFOLIO_AUDIO_ENABLED", "")
			t.Setenv("PORTFOLIO_MASTER_VOLUME", "")
			t.Setenv("PORTFOLIO_SAMPLE_RATE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := LoadAudioConfig()
			if cfg.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Enabled, tt.enabled)
			}
			if cfg.MasterVolume != tt.volume {
				t.Errorf("MasterVolume = %f, want %f", cfg.MasterVolume, tt.volume)
			}
			if cfg.SampleRate != tt.rate {
				t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, tt.rate)
			}
		})
	}
}
