package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
	"github.com/Varsha6677/Crypto-Assignment/internal/platform/config"
)

// Config はデータベース接続の設定です。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string

	// InstanceName はCloud SQL接続名です。設定されている場合、Host/Portより優先されます。
	InstanceName string
}

// BuildDSN は設定からMySQLのDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Opener はDSNからDB接続を確立する関数です。テストで差し替え可能にするための抽象化です。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は接続が確立するかタイムアウトするまで、3秒間隔で接続を再試行します。
// コンテナ起動直後などDBが未準備の場合に備えたリトライです。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB はMySQLへの接続を確立し、設定に応じてマイグレーションを実行します。
func OpenDB(cfg config.Config) *gorm.DB {
	dsn := BuildDSN(Config{
		User:         cfg.DBUser,
		Password:     cfg.DBPassword,
		Name:         cfg.DBName,
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		InstanceName: cfg.InstanceName,
	})

	db, err := ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
		// TranslateError有効化により、重複キーをgorm.ErrDuplicatedKeyとして検出できる
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&entity.Asset{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
