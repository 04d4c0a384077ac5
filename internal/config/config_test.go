package config

import (
	"path/filepath"
	"testing"
)

func TestAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	if cfg.Host() != DefaultHost {
		t.Errorf("Host() = %q", cfg.Host())
	}
	if cfg.Port() != DefaultPort {
		t.Errorf("Port() = %d", cfg.Port())
	}
	if cfg.LogFormat() != LogFormatPretty {
		t.Errorf("LogFormat() = %q", cfg.LogFormat())
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestAppConfig_DerivedPaths(t *testing.T) {
	cfg := NewAppConfig().Apply(WithDataDir("/var/lib/fragbase"))

	wantDB := "sqlite:///" + filepath.Join("/var/lib/fragbase", DefaultDBFile)
	if cfg.DBURL() != wantDB {
		t.Errorf("DBURL() = %q, want %q", cfg.DBURL(), wantDB)
	}
	wantMedia := filepath.Join("/var/lib/fragbase", DefaultMediaDir)
	if cfg.MediaDir() != wantMedia {
		t.Errorf("MediaDir() = %q, want %q", cfg.MediaDir(), wantMedia)
	}

	cfg = cfg.Apply(WithDBURL("postgres://localhost/frag"), WithMediaDir("/srv/media"))
	if cfg.DBURL() != "postgres://localhost/frag" {
		t.Errorf("DBURL() override = %q", cfg.DBURL())
	}
	if cfg.MediaDir() != "/srv/media" {
		t.Errorf("MediaDir() override = %q", cfg.MediaDir())
	}
}

func TestEnvConfig_ToAppConfig(t *testing.T) {
	env := EnvConfig{
		Host:      "127.0.0.1",
		Port:      9090,
		LogFormat: "JSON",
	}
	cfg := env.ToAppConfig()

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.LogFormat() != LogFormatJSON {
		t.Errorf("LogFormat() = %q", cfg.LogFormat())
	}
	if cfg.LogLevel() != DefaultLogLevel {
		t.Errorf("LogLevel() = %q, want default", cfg.LogLevel())
	}
}

func TestEnvConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("DB_URL", "sqlite:///tmp/x.db")

	env, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if env.Port != 9191 {
		t.Errorf("Port = %d", env.Port)
	}
	if env.DBURL != "sqlite:///tmp/x.db" {
		t.Errorf("DBURL = %q", env.DBURL)
	}
}
