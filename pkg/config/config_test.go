package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tverrors "github.com/topoviz/topoviz/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvURI, "")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")
	os.Unsetenv(EnvURI)
	os.Unsetenv(EnvUsername)
	os.Unsetenv(EnvPassword)
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent", DefaultPath))
	if err == nil {
		t.Fatal("expected error for explicit missing path")
	}
	if !tverrors.Is(err, tverrors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}

	// The implicit default path may not exist either, which is fine.
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(t.TempDir())

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load with missing default file: %v", err)
	}
	if cfg.Render.OutputDir != "." || cfg.Render.Seed != 42 {
		t.Errorf("unexpected defaults: %+v", cfg.Render)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "topoviz.toml")
	content := `
[source]
uri = "neo4j://localhost:7687"
username = "neo4j"
password = "secret"

[render]
output_dir = "out"
title = "Lab Topology"
seed = 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.URI != "neo4j://localhost:7687" {
		t.Errorf("uri = %q", cfg.Source.URI)
	}
	if cfg.Render.Title != "Lab Topology" || cfg.Render.Seed != 7 {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "topoviz.toml")
	content := `
[source]
uri = "neo4j://file:7687"
username = "fileuser"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvURI, "neo4j+s://env.example.com")
	t.Setenv(EnvPassword, "envsecret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.URI != "neo4j+s://env.example.com" {
		t.Errorf("env should win: uri = %q", cfg.Source.URI)
	}
	if cfg.Source.Username != "fileuser" {
		t.Errorf("file value should survive unset env: username = %q", cfg.Source.Username)
	}
	if cfg.Source.Password != "envsecret" {
		t.Errorf("password = %q", cfg.Source.Password)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[source\nuri ="), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !tverrors.Is(err, tverrors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{"Complete", Source{URI: "neo4j://h", Username: "u", Password: "p"}, false},
		{"MissingURI", Source{Username: "u"}, true},
		{"MissingUsername", Source{URI: "neo4j://h"}, true},
		{"EmptyPasswordAllowed", Source{URI: "neo4j://h", Username: "u"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{Source: tt.source}.ValidateSource()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSource() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := Default()
	cfg.Source = Source{URI: "neo4j://h", Username: "u", Password: "hunter2"}
	s := cfg.String()
	if strings.Contains(s, "hunter2") {
		t.Errorf("password leaked in %q", s)
	}
	if !strings.Contains(s, "****") {
		t.Errorf("expected mask in %q", s)
	}
}
