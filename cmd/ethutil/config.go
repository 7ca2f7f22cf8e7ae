package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/log"
	"github.com/blockchainethdev/ethereum-util/pkg/sign"
)

const (
	configDirPathEnv     = "ETHUTIL_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
	keystoreFileName     = "keystore.db"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the operator shell configuration, read from the environment and
// an optional .env file in ETHUTIL_CONFIG_DIR_PATH.
type Config struct {
	Engine       string `env:"ETHUTIL_ENGINE" env-default:"geth" validate:"engine"`
	Scheme       string `env:"ETHUTIL_SIG_SCHEME" env-default:"eip155" validate:"oneof=eip155 legacy raw"`
	ChainID      uint64 `env:"ETHUTIL_CHAIN_ID" env-default:"0"`
	KeystorePath string `env:"ETHUTIL_KEYSTORE_PATH"`
	Output       string `env:"ETHUTIL_OUTPUT" env-default:"table" validate:"oneof=table json yaml"`
	Log          log.Config

	dotEnvPath string
	dotEnvErr  error
}

// LoadConfig reads <configDirPath>/.env, if present, then the environment.
func LoadConfig(configDirPath string) (*Config, error) {
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	conf := Config{dotEnvPath: filepath.Join(configDirPath, ".env")}
	conf.dotEnvErr = godotenv.Load(conf.dotEnvPath)

	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	if _, err := conf.SignatureScheme(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if conf.KeystorePath == "" {
		path, err := defaultKeystorePath()
		if err != nil {
			return nil, err
		}
		conf.KeystorePath = path
	}
	return &conf, nil
}

// SignatureScheme returns the configured recovery parameter encoding.
func (c *Config) SignatureScheme() (sign.Scheme, error) {
	return sign.ParseScheme(c.Scheme, c.ChainID)
}

// LogLoad records how the configuration was assembled.
func (c *Config) LogLoad(logger log.Logger) {
	if c.dotEnvErr != nil {
		logger.Warn(".env file not found", "path", c.dotEnvPath)
	} else {
		logger.Info("loaded .env file", "path", c.dotEnvPath)
	}
	logger.Info("configuration loaded",
		"engine", c.Engine,
		"scheme", c.Scheme,
		"chainId", c.ChainID,
		"keystore", c.KeystorePath,
		"output", c.Output,
	)
}

func (c *Config) validate() error {
	validate := getValidator()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s has invalid value %q", verrs[0].Field(), fmt.Sprint(verrs[0].Value()))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validate.Var(string(c.Log.Level), "oneof=debug info warn error fatal"); err != nil {
		return fmt.Errorf("invalid configuration: log level %q", c.Log.Level)
	}
	if err := validate.Var(c.Log.Format, "oneof=console logfmt json"); err != nil {
		return fmt.Errorf("invalid configuration: log format %q", c.Log.Format)
	}
	return nil
}

func getValidator() *validator.Validate {
	validate := validator.New()

	if err := validate.RegisterValidation("engine", func(fl validator.FieldLevel) bool {
		_, err := curve.ByName(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register engine validation: %v", err))
	}
	return validate
}

func defaultKeystorePath() (string, error) {
	userConfDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dir := filepath.Join(userConfDir, "ethutil")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, keystoreFileName), nil
}
