package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/studyapp/studygroup/internal/config"
	"github.com/studyapp/studygroup/internal/db"
	"github.com/studyapp/studygroup/internal/models"
)

func TestMigrate_FromConfigFile(t *testing.T) {
	t.Setenv("DB_CONNECTION", "")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "study.db")
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("database-dsn: file:"+dbPath+"\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if errMigrate := Migrate(context.Background(), config.AppConfig{ConfigPath: configPath}); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	conn, err := db.Open("file:" + dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var count int64
	if errCount := conn.Model(&models.User{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count users: %v", errCount)
	}
	if count != 3 {
		t.Fatalf("expected 3 seed users, got %d", count)
	}
}

func TestMigrate_MissingDSN(t *testing.T) {
	t.Setenv("DB_CONNECTION", "")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 9090\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if errMigrate := Migrate(context.Background(), config.AppConfig{ConfigPath: configPath}); errMigrate == nil {
		t.Fatalf("expected error for missing dsn")
	}
}
