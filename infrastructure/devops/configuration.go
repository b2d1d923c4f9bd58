package devops

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration for the timeclock server. Values come
// from a YAML file; DSN and the signing secret may be overridden by env vars
// so deployments can keep credentials out of the file.
type Config struct {
	ListenAddr      string `yaml:"listen_addr"`
	DSN             string `yaml:"dsn"`
	MaxConnections  int    `yaml:"max_connections"`
	SigningSecret   string `yaml:"signing_secret"` // base64
	SignatureBucket string `yaml:"signature_bucket"`
}

var (
	once    sync.Once
	loaded  *Config
	loadErr error
)

// Load reads the config once. Path comes from SHIFTCLOCK_CONFIG, defaulting
// to ./config.yaml.
func Load() (*Config, error) {
	once.Do(func() {
		path := os.Getenv("SHIFTCLOCK_CONFIG")
		if path == "" {
			path = "config.yaml"
		}

		cfg := &Config{
			ListenAddr:     "0.0.0.0:8090",
			MaxConnections: 10,
		}

		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				loadErr = fmt.Errorf("unmarshal yaml: %w", err)
				return
			}
		}

		if dsn := os.Getenv("DSN"); dsn != "" {
			cfg.DSN = dsn
		}
		if secret := os.Getenv("SHIFTCLOCK_SIGNING_SECRET"); secret != "" {
			cfg.SigningSecret = secret
		}
		if bucket := os.Getenv("SIGNATURE_BUCKET"); bucket != "" {
			cfg.SignatureBucket = bucket
		}

		if cfg.DSN == "" {
			loadErr = fmt.Errorf("no DSN configured")
			return
		}

		loaded = cfg
	})

	return loaded, loadErr
}
