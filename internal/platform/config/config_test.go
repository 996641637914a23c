package config

import (
	"os"
	"testing"
)

// TestLoad_FromEnv は環境変数から設定が正しく読み込まれることを検証します。
func TestLoad_FromEnv(t *testing.T) {
	// 環境変数を書き換えるため並列化しない
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("expected Addr ':9090', got %q", cfg.Addr)
	}
	if cfg.DBUser != "envuser" {
		t.Errorf("expected DBUser 'envuser', got %q", cfg.DBUser)
	}
	if cfg.DBPassword != "envpass" {
		t.Errorf("expected DBPassword 'envpass', got %q", cfg.DBPassword)
	}
	if cfg.DBName != "envdb" {
		t.Errorf("expected DBName 'envdb', got %q", cfg.DBName)
	}
	if cfg.DBHost != "envhost" {
		t.Errorf("expected DBHost 'envhost', got %q", cfg.DBHost)
	}
	if cfg.DBPort != "3307" {
		t.Errorf("expected DBPort '3307', got %q", cfg.DBPort)
	}
	if cfg.RunMigrations {
		t.Error("expected RunMigrations to be false")
	}
}

// TestLoad_Defaults は環境変数が未設定の場合にデフォルト値が適用されることを検証します。
func TestLoad_Defaults(t *testing.T) {
	// t.Setenvで元の値の復元を登録してから未設定状態にする
	for _, key := range []string{"ADDR", "DB_USER", "DB_HOST", "DB_PORT", "DB_NAME", "RUN_MIGRATIONS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default Addr ':8080', got %q", cfg.Addr)
	}
	if cfg.DBName != "crypto_assets" {
		t.Errorf("expected default DBName 'crypto_assets', got %q", cfg.DBName)
	}
	if !cfg.RunMigrations {
		t.Error("expected RunMigrations to default to true")
	}
}
