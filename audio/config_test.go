package audio

import (
	"os"
	"testing"
)

// TestDefaultAudioConfig verifies default configuration values
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected audio to be enabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected MasterVolume=0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected SampleRate=44100, got %d", cfg.SampleRate)
	}

	for _, st := range []SoundType{SoundThump, SoundScratch, SoundCrackle} {
		if v, ok := cfg.EffectVolumes[st]; !ok || v != 1.0 {
			t.Errorf("Expected %s volume 1.0, got %f (present=%v)", st, v, ok)
		}
	}
}

// TestLoadAudioConfigNoEnv verifies defaults are kept without environment
func TestLoadAudioConfigNoEnv(t *testing.T) {
	for _, key := range []string{
		"TURNTABLE_AUDIO_ENABLED",
		"TURNTABLE_MASTER_VOLUME",
		"TURNTABLE_SFX_VOLUMES",
		"TURNTABLE_SAMPLE_RATE",
	} {
		os.Unsetenv(key)
	}

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", def.Enabled, cfg.Enabled)
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Errorf("Expected MasterVolume=%f, got %f", def.MasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected SampleRate=%d, got %d", def.SampleRate, cfg.SampleRate)
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	defer os.Unsetenv("TURNTABLE_AUDIO_ENABLED")

	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"maybe", true}, // Unparseable keeps default
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			os.Setenv("TURNTABLE_AUDIO_ENABLED", tc.value)
			cfg := LoadAudioConfig()

			if cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies percent conversion and clamping
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	defer os.Unsetenv("TURNTABLE_MASTER_VOLUME")

	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"75", 0.75},
		{"-50", 0.0},
		{"150", 1.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			os.Setenv("TURNTABLE_MASTER_VOLUME", tc.value)
			cfg := LoadAudioConfig()

			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies JSON per-effect levels
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	defer os.Unsetenv("TURNTABLE_SFX_VOLUMES")

	os.Setenv("TURNTABLE_SFX_VOLUMES", `{"thump":0.25,"crackle":3,"bogus":0.1}`)
	cfg := LoadAudioConfig()

	if cfg.EffectVolumes[SoundThump] != 0.25 {
		t.Errorf("Expected thump 0.25, got %f", cfg.EffectVolumes[SoundThump])
	}
	if cfg.EffectVolumes[SoundCrackle] != 1.0 {
		t.Errorf("Expected crackle clamped to 1.0, got %f", cfg.EffectVolumes[SoundCrackle])
	}
	if cfg.EffectVolumes[SoundScratch] != 1.0 {
		t.Errorf("Expected scratch untouched at 1.0, got %f", cfg.EffectVolumes[SoundScratch])
	}

	os.Setenv("TURNTABLE_SFX_VOLUMES", `not json`)
	cfg = LoadAudioConfig()
	if cfg.EffectVolumes[SoundThump] != 1.0 {
		t.Errorf("Expected invalid JSON to keep defaults, got %f", cfg.EffectVolumes[SoundThump])
	}
}

// TestLoadAudioConfigSampleRate verifies sample rate override
func TestLoadAudioConfigSampleRate(t *testing.T) {
	defer os.Unsetenv("TURNTABLE_SAMPLE_RATE")

	os.Setenv("TURNTABLE_SAMPLE_RATE", "48000")
	if cfg := LoadAudioConfig(); cfg.SampleRate != 48000 {
		t.Errorf("Expected SampleRate=48000, got %d", cfg.SampleRate)
	}

	os.Setenv("TURNTABLE_SAMPLE_RATE", "-1")
	if cfg := LoadAudioConfig(); cfg.SampleRate != 44100 {
		t.Errorf("Expected negative rate to be ignored, got %d", cfg.SampleRate)
	}
}

// TestEffectLevel verifies master and effect volumes multiply
func TestEffectLevel(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[SoundScratch] = 0.5

	if got := cfg.level(SoundScratch); got != 0.25 {
		t.Errorf("Expected level 0.25, got %f", got)
	}

	delete(cfg.EffectVolumes, SoundThump)
	if got := cfg.level(SoundThump); got != 0.5 {
		t.Errorf("Expected missing effect to use master only, got %f", got)
	}
}
