package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://127.0.0.1:5000" {
			t.Errorf("expected API base URL http://127.0.0.1:5000, got %s", config.API.BaseURL)
		}

		if config.API.Language != "es-ES" {
			t.Errorf("expected language es-ES, got %s", config.API.Language)
		}

		if config.TMDB.BaseURL != "https://api.themoviedb.org/3" {
			t.Errorf("expected TMDB base URL https://api.themoviedb.org/3, got %s", config.TMDB.BaseURL)
		}

		if config.TMDB.RateLimit != 4.0 {
			t.Errorf("expected TMDB rate limit 4.0, got %f", config.TMDB.RateLimit)
		}

		if config.Database.Path != "./dtv.db" {
			t.Errorf("expected database path ./dtv.db, got %s", config.Database.Path)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://disfrutatv.example.com"
language = "en-US"

[tmdb]
api_key = "test_api_key"
base_url = "https://api.themoviedb.org/3"
rate_limit = 2.5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://disfrutatv.example.com" {
			t.Errorf("expected API base URL https://disfrutatv.example.com, got %s", config.API.BaseURL)
		}

		if config.TMDB.APIKey != "test_api_key" {
			t.Errorf("expected TMDB api_key test_api_key, got %s", config.TMDB.APIKey)
		}

		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected max_open_conns 20, got %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("SaveConfig Round-Trips", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.TMDB.APIKey = "saved_key"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		reloaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}

		if reloaded.TMDB.APIKey != "saved_key" {
			t.Errorf("expected saved_key after round-trip, got %s", reloaded.TMDB.APIKey)
		}
	})
}
