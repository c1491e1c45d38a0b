package config

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	AppEnv          string `envconfig:"APP_ENV" default:"dev"`
	ServiceName     string `envconfig:"SERVICE_NAME" default:"supermarket"`
	SeedFile        string `envconfig:"SEED_FILE"` // empty -> embedded sample data
	JournalCapacity int    `envconfig:"JOURNAL_CAPACITY" default:"1024"`
	Logger
}

type Logger struct {
	Level    string `envconfig:"LOGGER_LEVEL" default:"info"`
	Encoding string `envconfig:"LOGGER_ENCODING" default:"console"`
}

func (c Config) Development() bool { return c.AppEnv == "dev" || c.AppEnv == "development" }

// Load reads envFiles and then the process environment. A missing env file
// is skipped; one that cannot be parsed is an error.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "load env file %s", f)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return cfg, nil
}
