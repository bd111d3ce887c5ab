// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Lark Bitable (the listing store)
	LarkAppID     string `yaml:"lark_app_id" env:"LARK_APP_ID"`
	LarkAppSecret string `yaml:"lark_app_secret" env:"LARK_APP_SECRET"`
	LarkBaseID    string `yaml:"lark_base_id" env:"LARK_BASE_ID"`
	LarkTableID   string `yaml:"lark_table_id" env:"LARK_TABLE_ID"`
	//Geocoding (optional; distance search is disabled without it)
	GoogleMapAPIKey string `yaml:"google_map_api_key" env:"GOOGLE_MAP_API_KEY"`
	//Server
	Port string `yaml:"port" env:"PORT"`
	//Paths
	CachePath string `yaml:"cache_path"`
	//How long a fetched catalog snapshot stays fresh
	CatalogTTLMinutes int `yaml:"catalog_ttl_minutes"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if v := os.Getenv("LARK_APP_ID"); v != "" {
		cfg.LarkAppID = v
	}
	if v := os.Getenv("LARK_APP_SECRET"); v != "" {
		cfg.LarkAppSecret = v
	}
	if v := os.Getenv("LARK_BASE_ID"); v != "" {
		cfg.LarkBaseID = v
	}
	if v := os.Getenv("LARK_TABLE_ID"); v != "" {
		cfg.LarkTableID = v
	}
	if v := os.Getenv("GOOGLE_MAP_API_KEY"); v != "" {
		cfg.GoogleMapAPIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("CATALOG_TTL_MINUTES"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid CATALOG_TTL_MINUTES: %v", err)
		}
		cfg.CatalogTTLMinutes = ttl
	}

	//Set default values if not set
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if cfg.CatalogTTLMinutes == 0 {
		cfg.CatalogTTLMinutes = 5
	}

	//Validate required fields
	if cfg.LarkAppID == "" {
		log.Fatal("LARK_APP_ID is required")
	}
	if cfg.LarkAppSecret == "" {
		log.Fatal("LARK_APP_SECRET is required")
	}
	if cfg.LarkBaseID == "" {
		log.Fatal("LARK_BASE_ID is required")
	}
	if cfg.LarkTableID == "" {
		log.Fatal("LARK_TABLE_ID is required")
	}

	return cfg
}

// CatalogTTL is the snapshot freshness window as a duration.
func (c *Config) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLMinutes) * time.Minute
}
