package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/groupelo/internal/category"
	"github.com/goserg/groupelo/internal/elo"
	"github.com/goserg/groupelo/internal/engine"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "GROUPELO_"

var ErrInvalidConfig = errors.New("invalid config")

type Engine struct {
	K              float64 `toml:"k" koanf:"k"`
	StartingRating float64 `toml:"starting_rating" koanf:"starting_rating"`
	Normalization  string  `toml:"normalization" koanf:"normalization"`
}

type Record struct {
	CategoryFields int `toml:"category_fields" koanf:"category_fields"`
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file" koanf:"sqlite_file"`
}

type Report struct {
	Categories  []string `toml:"categories" koanf:"categories"`
	ExportFile  string   `toml:"export_file" koanf:"export_file"`
	MetricsFile string   `toml:"metrics_file" koanf:"metrics_file"`
}

type Config struct {
	LogLevel string  `toml:"log_level" koanf:"log_level"`
	Engine   Engine  `toml:"engine" koanf:"engine"`
	Record   Record  `toml:"record" koanf:"record"`
	Storage  Storage `toml:"storage" koanf:"storage"`
	Report   Report  `toml:"report" koanf:"report"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Engine: Engine{
			K:              elo.DefaultK,
			StartingRating: elo.StartingRating,
			Normalization:  string(engine.NormalizeContests),
		},
		Storage: Storage{
			SqliteFile: "records.sqlite",
		},
		Report: Report{
			Categories: []string{category.Overall},
		},
	}
}

// New layers defaults, the TOML file at path (skipped when empty) and
// GROUPELO_ environment variables. Nested keys use a double underscore,
// e.g. GROUPELO_ENGINE__K=32.
func New(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		if key == "report.categories" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return Config{}, err
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if c.Engine.K <= 0 {
		err = errors.Join(err, errors.New("engine.k must be positive"))
	}
	if _, nErr := engine.ParseNormalization(c.Engine.Normalization); nErr != nil {
		err = errors.Join(err, nErr)
	}
	if c.Record.CategoryFields < 0 {
		err = errors.Join(err, errors.New("record.category_fields must not be negative"))
	}
	if len(c.Report.Categories) == 0 {
		err = errors.Join(err, errors.New("report.categories must not be empty"))
	}
	err = errors.Join(err, category.Validate(c.Report.Categories))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
