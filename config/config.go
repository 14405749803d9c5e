// Package config loads the application's runtime configuration via viper.
package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/spf13/viper"
)

var config *Config
var m sync.Mutex

// Config is the full application configuration tree.
type Config struct {
	Env        string     `yaml:"env"`
	App        App        `yaml:"app"`
	HttpServer HttpServer `yaml:"httpServer"`
	Log        Log        `yaml:"log"`
	Mongo      Mongo      `yaml:"mongo"`
	Auth       Auth       `yaml:"auth"`
}

// App carries process-identifying fields used in logs and swagger.
type App struct {
	Name string `yaml:"name"`
}

// HttpServer configures the gin listener.
type HttpServer struct {
	Port int `yaml:"port"`
}

// Log configures the zap logger.
type Log struct {
	Level string `yaml:"level"`
}

// Mongo configures the MongoDB connection the repository layer dials.
type Mongo struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	ConnectTimeout int    `yaml:"connectTimeoutSeconds" mapstructure:"connectTimeoutSeconds"`
}

// Auth configures the bearer-token verification boundary (§6). When
// Enabled is false the core accepts every request as already
// authenticated, matching the spec's "external collaborator" framing.
type Auth struct {
	Enabled      bool   `yaml:"enabled"`
	PublicKeyPEM string `yaml:"publicKeyPem"`
}

// GetConfig returns the process-wide Config, set by SetConfig.
func GetConfig() *Config {
	return config
}

// SetConfig reads configFile via viper and unmarshals it into the
// process-wide Config.
func SetConfig(configFile string) {
	m.Lock()
	defer m.Unlock()

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error getting config file, %s", err)
	}

	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println("Unable to decode into struct, ", err)
	}
}
