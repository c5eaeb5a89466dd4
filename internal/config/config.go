package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Questions struct {
		Path string `yaml:"path"`
	} `yaml:"questions"`
}

// Load reads YAML config from path and applies env fallbacks. A missing file
// is not an error; the defaults still apply.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = envOr("PORT", "3000")
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv("DATABASE_URL")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = envOr("JWT_SECRET", "prephub-dev-signing-key")
	}
	if cfg.Questions.Path == "" {
		cfg.Questions.Path = envOr("QUESTIONS_PATH", "public/data/questions.json")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
