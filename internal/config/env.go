package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Variables de entorno que pisan la configuración persistida.
const (
	envAPIKey         = "SMART_COMMIT_API_KEY"
	envAPIKeyFallback = "OPENAI_API_KEY"
	envBaseURL        = "SMART_COMMIT_BASE_URL"
	envProxy          = "SMART_COMMIT_PROXY"
)

// LoadEnvFile carga el archivo .env del directorio actual si existe.
func LoadEnvFile() {
	envFile := ".env"
	workingDir, err := os.Getwd()
	if err == nil {
		envFile = filepath.Join(workingDir, envFile)
	}
	if envMap, errRead := godotenv.Read(envFile); errRead == nil {
		for key, value := range envMap {
			_ = os.Setenv(key, value)
		}
	}
}

// ApplyEnvOverrides aplica los overrides de entorno sobre la configuración
// ya cargada. El archivo de configuración nunca se reescribe con estos valores.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envAPIKey); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv(envAPIKeyFallback); v != "" && cfg.APIKey == "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envProxy); v != "" {
		cfg.Proxy = v
	}
}
