package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TwPath != "tw" || cfg.LogLevel != "INFO" || cfg.CleanupArchive {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "tw_path: /opt/seqera/tw\nlog_level: DEBUG\ncleanup_archive: true\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TwPath != "/opt/seqera/tw" {
		t.Fatalf("tw_path = %q", cfg.TwPath)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
	if !cfg.CleanupArchive {
		t.Fatalf("cleanup_archive not applied: %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("log_level: WARNING\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TwPath != "tw" {
		t.Fatalf("tw_path = %q, want default", cfg.TwPath)
	}
	if cfg.LogLevel != "WARNING" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("log_level: [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyFlagsOverridesFile(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "DEBUG"
	cfg.TwPath = "/opt/seqera/tw"

	ApplyFlags(&cfg, FlagValues{
		LogLevel:       StringFlag{Value: "ERROR", Set: true},
		CleanupArchive: BoolFlag{Value: true, Set: true},
	})

	if cfg.LogLevel != "ERROR" {
		t.Fatalf("log_level = %q, want flag value", cfg.LogLevel)
	}
	if cfg.TwPath != "/opt/seqera/tw" {
		t.Fatalf("tw_path = %q, want file value untouched", cfg.TwPath)
	}
	if !cfg.CleanupArchive {
		t.Fatalf("cleanup_archive not applied")
	}
}

func TestApplyFlagsUnsetLeavesConfig(t *testing.T) {
	cfg := Default()
	ApplyFlags(&cfg, FlagValues{LogLevel: StringFlag{Value: "ERROR", Set: false}})
	if cfg.LogLevel != "INFO" {
		t.Fatalf("log_level = %q, want default preserved", cfg.LogLevel)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	loaded, err := LoadEnv(t.TempDir())
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if loaded {
		t.Fatal("reported loaded with no .env present")
	}
}

func TestLoadEnvSetsVariables(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RUNMETA_TEST_TOKEN=tok-abc\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	defer os.Unsetenv("RUNMETA_TEST_TOKEN")

	loaded, err := LoadEnv(dir)
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if !loaded {
		t.Fatal("expected .env to load")
	}
	if got := os.Getenv("RUNMETA_TEST_TOKEN"); got != "tok-abc" {
		t.Fatalf("RUNMETA_TEST_TOKEN = %q", got)
	}
}

func TestLoadEnvKeepsExistingVariables(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RUNMETA_TEST_KEEP=file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("RUNMETA_TEST_KEEP", "environment")

	if _, err := LoadEnv(dir); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("RUNMETA_TEST_KEEP"); got != "environment" {
		t.Fatalf("RUNMETA_TEST_KEEP = %q, want environment value preserved", got)
	}
}
