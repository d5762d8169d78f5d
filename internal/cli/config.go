package cli

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/superperm/pkg/errors"
)

// Config is the optional superperm.toml file.
//
//	symbols = 4
//
//	[output]
//	format = "table"
//	report = "runs/n4.json"
//
//	[log]
//	level = "info"
//
//	[cache]
//	disabled = false
type Config struct {
	Symbols int          `toml:"symbols"`
	Output  OutputConfig `toml:"output"`
	Log     LogConfig    `toml:"log"`
	Cache   CacheConfig  `toml:"cache"`
}

// OutputConfig controls how results are printed and saved.
type OutputConfig struct {
	Format string `toml:"format"`
	Report string `toml:"report"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig controls the report cache.
type CacheConfig struct {
	Disabled bool `toml:"disabled"`
}

func defaultConfig() Config {
	return Config{
		Symbols: defaultSymbols,
		Output:  OutputConfig{Format: "table"},
		Log:     LogConfig{Level: "info"},
	}
}

// loadConfig reads path on top of the defaults and applies the environment.
// A missing file is only an error when the user named it explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case os.IsNotExist(err) && !explicit:
			cfg = defaultConfig()
		case err != nil:
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
			}
		}
	}

	if v := os.Getenv(symbolsEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s=%q", symbolsEnv, v)
		}
		cfg.Symbols = n
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := errors.ValidateSymbols(c.Symbols); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "symbols")
	}
	if err := errors.ValidateFormat(c.Output.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.format")
	}
	if c.Output.Report != "" {
		if err := errors.ValidatePath(c.Output.Report); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.report")
		}
	}
	switch c.Log.Level {
	case "debug", "info":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "log.level %q (want debug or info)", c.Log.Level)
	}
	return nil
}
