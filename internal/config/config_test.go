package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":3000" {
		t.Errorf("Expected :3000, got %q", cfg.Server.Address)
	}
	if cfg.Database.Driver != DriverMongo || cfg.Database.Name != "exercise_tracker" {
		t.Errorf("Unexpected database config: %+v", cfg.Database)
	}
	if cfg.Database.Timeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", cfg.Database.Timeout)
	}
	if cfg.S3.BucketName != "" {
		t.Errorf("Archive must be disabled by default")
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
database:
  driver: memory
  timeout: 250ms
admin:
  delete_code: from-file
s3:
  bucket_name: archive-bucket
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":9090" || cfg.Database.Driver != DriverMemory {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Database.Timeout != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", cfg.Database.Timeout)
	}
	if cfg.Admin.DeleteCode != "from-file" || cfg.S3.BucketName != "archive-bucket" {
		t.Errorf("Unexpected admin/s3 config: %+v %+v", cfg.Admin, cfg.S3)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.example:27017")
	t.Setenv("PORT", "4000")
	t.Setenv("ADMIN_DELETE_CODE", "from-env")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Database.URI != "mongodb://db.example:27017" {
		t.Errorf("Expected MONGO_URI to apply, got %q", cfg.Database.URI)
	}
	if cfg.Server.Address != ":4000" {
		t.Errorf("Expected :4000, got %q", cfg.Server.Address)
	}
	if cfg.Admin.DeleteCode != "from-env" {
		t.Errorf("Expected delete code from env, got %q", cfg.Admin.DeleteCode)
	}
}

func TestLoadConfig_ExplicitAddressBeatsPort(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:5000")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1:5000" {
		t.Errorf("Expected SERVER_ADDRESS to win, got %q", cfg.Server.Address)
	}
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")

	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Errorf("Expected error for unknown driver")
	}
}

func TestLoadConfig_RejectsUnknownMode(t *testing.T) {
	t.Setenv("SERVER_MODE", "turbo")

	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Errorf("Expected error for unknown gin mode")
	}
}
