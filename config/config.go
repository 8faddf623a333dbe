package config

import (
	"flag"
	"fmt"
	"log"

	"food-delivery-client/api"
	"food-delivery-client/storage"

	"github.com/glebarez/sqlite"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var configPath = flag.String("config", "", "optional YAML config file")

type Config struct {
	APIBaseURL    string `yaml:"api_base_url" env:"API_BASE_URL"`
	ListenAddr    string `yaml:"listen_addr" env:"LISTEN_ADDR" env-default:":3000"`
	StorePath     string `yaml:"store_path" env:"STORE_PATH" env-default:"food_delivery_client.db"`
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"food_delivery_client_dev_secret"`
	GinMode       string `yaml:"gin_mode" env:"GIN_MODE"`
}

// Load reads .env (if any), then the YAML file given by -config or the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using process environment")
	} else {
		log.Println("✅ Loaded .env")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	cfg := new(Config)
	var err error
	if *configPath != "" {
		err = cleanenv.ReadConfig(*configPath, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = api.DefaultBaseURL
	}
	return cfg, nil
}

// InitStore opens the durable client store and migrates it
func InitStore(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.AutoMigrate(&storage.Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	log.Printf("✅ Client store ready at %s", path)
	return db, nil
}
