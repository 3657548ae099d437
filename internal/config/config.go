package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Document DocumentConfig
	Storage  StorageConfig
	JWT      JWTConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// DocumentConfig holds configuration for the main configuration document
type DocumentConfig struct {
	// BootstrapPath is the bundled static document used as a read-only
	// fallback when the store has no document yet.
	BootstrapPath string
	// AutoSeed writes the bootstrap document to the store on first read when
	// the store is empty. Off by default so a separate reseed tool owns the
	// first write.
	AutoSeed bool
}

// StorageConfig holds configuration for the brand asset object store
type StorageConfig struct {
	// Bucket is the GridFS bucket name holding brand assets. An empty value
	// means the object store is not configured and listings degrade to empty
	// results instead of failing.
	Bucket string
	// PublicBaseURL is prepended to object paths to form public URLs
	PublicBaseURL string
	// Prefix is the root path prefix for all brand asset objects
	Prefix string
}

// JWTConfig holds JWT-specific configuration. Auth is disabled in this build
// unless Enabled is set.
type JWTConfig struct {
	Enabled   bool
	Secret    string
	ExpiresIn int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "demokit")
	viper.SetDefault("Document.BootstrapPath", "config.json")
	viper.SetDefault("Document.AutoSeed", false)
	viper.SetDefault("Storage.Bucket", "brand_assets")
	viper.SetDefault("Storage.PublicBaseURL", "http://localhost:4000/storage")
	viper.SetDefault("Storage.Prefix", "brand-assets")
	viper.SetDefault("JWT.Enabled", false)
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
}
