package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/gameverse/internal/storage"
)

// Config is the top-level gameverse configuration.
type Config struct {
	DataDir  string   `mapstructure:"data_dir"`
	Storage  Storage  `mapstructure:"storage"`
	Voice    Voice    `mapstructure:"voice"`
	Speech   Speech   `mapstructure:"speech"`
	Dispatch Dispatch `mapstructure:"dispatch"`
	Output   Output   `mapstructure:"output"`
}

// Storage selects the persistence engine.
type Storage struct {
	Engine string `mapstructure:"engine"`
	Path   string `mapstructure:"path"`
}

// Voice defines the listening controller's timing.
type Voice struct {
	Lang                 string        `mapstructure:"lang"`
	PromptDelay          time.Duration `mapstructure:"prompt_delay"`
	Cooldown             time.Duration `mapstructure:"cooldown"`
	EndRestartDelay      time.Duration `mapstructure:"end_restart_delay"`
	ManualRestartDelay   time.Duration `mapstructure:"manual_restart_delay"`
	BackoffBase          time.Duration `mapstructure:"backoff_base"`
	BackoffMax           time.Duration `mapstructure:"backoff_max"`
	MaxConsecutiveErrors int           `mapstructure:"max_consecutive_errors"`
}

// Speech defines synthesis parameters.
type Speech struct {
	Rate   float64 `mapstructure:"rate"`
	Pitch  float64 `mapstructure:"pitch"`
	Volume float64 `mapstructure:"volume"`
}

// Dispatch defines the delays between a reply and its action.
type Dispatch struct {
	NavigateDelay time.Duration `mapstructure:"navigate_delay"`
	CloseDelay    time.Duration `mapstructure:"close_delay"`
	ReplyDelay    time.Duration `mapstructure:"reply_delay"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a validated Config with all defaults applied. Environment
// variables prefixed GAMEVERSE_ override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultConfigDir)
	v.SetDefault("storage.engine", DefaultEngine)
	v.SetDefault("storage.path", "")
	v.SetDefault("voice.lang", DefaultVoice.Lang)
	v.SetDefault("voice.prompt_delay", DefaultVoice.PromptDelay)
	v.SetDefault("voice.cooldown", DefaultVoice.Cooldown)
	v.SetDefault("voice.end_restart_delay", DefaultVoice.EndRestartDelay)
	v.SetDefault("voice.manual_restart_delay", DefaultVoice.ManualRestartDelay)
	v.SetDefault("voice.backoff_base", DefaultVoice.BackoffBase)
	v.SetDefault("voice.backoff_max", DefaultVoice.BackoffMax)
	v.SetDefault("voice.max_consecutive_errors", DefaultVoice.MaxConsecutiveErrors)
	v.SetDefault("speech.rate", DefaultSpeech.Rate)
	v.SetDefault("speech.pitch", DefaultSpeech.Pitch)
	v.SetDefault("speech.volume", DefaultSpeech.Volume)
	v.SetDefault("dispatch.navigate_delay", DefaultDispatch.NavigateDelay)
	v.SetDefault("dispatch.close_delay", DefaultDispatch.CloseDelay)
	v.SetDefault("dispatch.reply_delay", DefaultDispatch.ReplyDelay)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix("gameverse")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Storage.Engine = strings.ToLower(strings.TrimSpace(cfg.Storage.Engine))
	if cfg.Storage.Path == "" {
		name := DefaultDBName
		if cfg.Storage.Engine == storage.EngineJSON {
			name = DefaultJSONName
		}
		cfg.Storage.Path = filepath.Join(cfg.DataDir, name)
	}
	cfg.Storage.Path = expandPath(cfg.Storage.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the controllers cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Engine {
	case storage.EngineSQLite, storage.EngineJSON, storage.EngineMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.engine: %w: %q", storage.ErrUnsupportedEngine, c.Storage.Engine))
	}

	durations := []struct {
		key string
		d   time.Duration
	}{
		{"voice.prompt_delay", c.Voice.PromptDelay},
		{"voice.cooldown", c.Voice.Cooldown},
		{"voice.end_restart_delay", c.Voice.EndRestartDelay},
		{"voice.manual_restart_delay", c.Voice.ManualRestartDelay},
		{"voice.backoff_base", c.Voice.BackoffBase},
		{"voice.backoff_max", c.Voice.BackoffMax},
		{"dispatch.navigate_delay", c.Dispatch.NavigateDelay},
		{"dispatch.close_delay", c.Dispatch.CloseDelay},
		{"dispatch.reply_delay", c.Dispatch.ReplyDelay},
	}
	for _, d := range durations {
		if d.d < 0 {
			errs = append(errs, fmt.Errorf("%s: must not be negative, got %s", d.key, d.d))
		}
	}
	if c.Voice.MaxConsecutiveErrors < 1 {
		errs = append(errs, fmt.Errorf("voice.max_consecutive_errors: must be at least 1, got %d", c.Voice.MaxConsecutiveErrors))
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 10 {
		errs = append(errs, fmt.Errorf("speech.rate: must be in (0, 10], got %g", c.Speech.Rate))
	}
	if c.Speech.Pitch < 0 || c.Speech.Pitch > 2 {
		errs = append(errs, fmt.Errorf("speech.pitch: must be in [0, 2], got %g", c.Speech.Pitch))
	}
	if c.Speech.Volume < 0 || c.Speech.Volume > 1 {
		errs = append(errs, fmt.Errorf("speech.volume: must be in [0, 1], got %g", c.Speech.Volume))
	}
	if c.Output.Width < 0 {
		errs = append(errs, fmt.Errorf("output.width: must not be negative, got %d", c.Output.Width))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
