package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "OVERTIME"
	configName = "overtime_tui"

	KeyDuration = "duration"
	KeyWarning  = "warning"
	KeyHistory  = "history"
	KeyLogFile  = "log-file"
	KeyVerbose  = "verbose"

	DefaultStartDuration    = 10 * time.Minute
	DefaultWarningThreshold = time.Minute
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the launch settings. It is read once at startup and not
// changed afterwards.
type Config struct {
	StartDuration    time.Duration `validate:"gt=0"`
	WarningThreshold time.Duration `validate:"gte=0"`
	HistoryPath      string        `validate:"omitempty,filepath"`
	LogFile          string        `validate:"omitempty,filepath"`
	Verbose          bool
}

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func validate() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Load resolves the config from, in increasing priority: defaults, the
// config file, OVERTIME_* environment variables and flags that were set
// on the command line. An empty configFile searches the user config
// directory and the working directory for overtime_tui.yaml; a missing
// file there is not an error.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyDuration, DefaultStartDuration.String())
	v.SetDefault(KeyWarning, DefaultWarningThreshold.String())
	v.SetDefault(KeyHistory, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				logrus.Warnf("error reading config file, %s", err)
			}
		}
	}

	start, err := ParseDuration(v.GetString(KeyDuration))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyDuration, err)
	}
	warning, err := ParseDuration(v.GetString(KeyWarning))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyWarning, err)
	}

	cfg := &Config{
		StartDuration:    start,
		WarningThreshold: warning,
		HistoryPath:      v.GetString(KeyHistory),
		LogFile:          v.GetString(KeyLogFile),
		Verbose:          v.GetBool(KeyVerbose),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

const maxMinutes = math.MaxInt64 / int64(time.Minute)

// ParseDuration accepts a bare number of minutes ("10") or a Go
// duration string ("90s", "1m30s").
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	var minutes int64
	var rest string
	if n, _ := fmt.Sscanf(input, "%d%s", &minutes, &rest); n == 1 {
		if minutes > maxMinutes || minutes < -maxMinutes {
			return 0, fmt.Errorf("duration %q out of range", input)
		}
		return time.Duration(minutes) * time.Minute, nil
	}

	d, err := time.ParseDuration(input)
	if err == nil {
		return d, nil
	}

	return 0, fmt.Errorf("invalid duration format %q", input)
}
