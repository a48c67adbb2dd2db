package stringwars

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvDataset    = "STRINGWARS_DATASET"
	EnvMode       = "STRINGWARS_MODE"
	EnvErrorBound = "STRINGWARS_ERROR_BOUND"
	EnvMaxPairs   = "STRINGWARS_MAX_PAIRS"
)

// Defaults applied when the optional variables are unset.
const (
	DefaultMode       = Lines
	DefaultErrorBound = 15
	DefaultMaxPairs   = 100
)

// Config is the harness configuration. It is built once at process start
// and passed to every component; nothing else reads the environment.
type Config struct {
	// Dataset is the path of the UTF-8 text file to load.
	Dataset string
	// Mode is the tokenization mode.
	Mode Mode
	// ErrorBound is the percent (0-100) of the longer unit's byte length
	// used as the early-exit bound for bounded edit-distance candidates.
	ErrorBound int
	// MaxPairs caps the number of pairs built for pair-shaped groups.
	MaxPairs int
	// Logger receives setup diagnostics. Nil discards them.
	Logger *slog.Logger
}

// ConfigFromEnv loads the configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}

// LoadConfig builds a Config from the lookup function, which has the
// signature of os.LookupEnv. All problems are reported together; each one
// wraps ErrConfig.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Mode:       DefaultMode,
		ErrorBound: DefaultErrorBound,
		MaxPairs:   DefaultMaxPairs,
	}
	errs := new(multierror.Error)

	if path, ok := lookup(EnvDataset); ok && path != "" {
		cfg.Dataset = path
	} else {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s is not set", ErrConfig, EnvDataset))
	}

	if v, ok := lookup(EnvMode); ok {
		mode, err := ParseMode(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", EnvMode, err))
		} else {
			cfg.Mode = mode
		}
	}

	if v, ok := lookup(EnvErrorBound); ok {
		percent, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = multierror.Append(errs, fmt.Errorf("%w: %s=%q is not an integer", ErrConfig, EnvErrorBound, v))
		case percent < 0 || percent > 100:
			errs = multierror.Append(errs, fmt.Errorf("%w: %s=%d is outside 0..100", ErrConfig, EnvErrorBound, percent))
		default:
			cfg.ErrorBound = percent
		}
	}

	// An unusable pair cap is not fatal; the default applies.
	if v, ok := lookup(EnvMaxPairs); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxPairs = n
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
