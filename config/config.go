package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config carries everything the storefront reads from the environment.
type Config struct {
	Port             string
	DBDriver         string // sqlite or mysql
	DBDSN            string
	StorageDriver    string // db or file
	DataDir          string
	TransitionPolicy string // lenient or strict
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBDSN:            getEnv("DB_DSN", "quickbite.db"),
		StorageDriver:    getEnv("STORAGE_DRIVER", "db"),
		DataDir:          getEnv("DATA_DIR", "data"),
		TransitionPolicy: getEnv("TRANSITION_POLICY", "lenient"),
	}
}

// OpenDB connects to the configured database.
func (c Config) OpenDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	if c.DBDriver == "mysql" {
		return gorm.Open(mysql.Open(c.DBDSN), gormCfg)
	}
	return gorm.Open(sqlite.Open(c.DBDSN), gormCfg)
}
