package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "taskboard-backend/internal/util/env"
	"taskboard-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     required:"true"`
	JwtSecret   string            `env:"JWT_SECRET"   required:"true"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"4005"`

	EnableHTTPS bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	HTTPSPort   string `env:"HTTPS_PORT"   envDefault:"4443"`
	CertsDir    string `env:"CERTS_DIR"    envDefault:"./certs"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.JwtSecret == "" {
		log.Error("JWT_SECRET is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment &&
		env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.HTTPPort == "" {
		env.HTTPPort = "4005"
	}

	if env.HTTPSPort == "" {
		env.HTTPSPort = "4443"
	}

	if env.CertsDir == "" {
		env.CertsDir = "./certs"
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
