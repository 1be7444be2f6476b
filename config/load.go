package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/elijahgaraz/Forex-Scalper-Live/session"
)

// File is the on-disk (YAML) shape of a scalper configuration. Omitted keys
// fall back to the stock defaults.
type File struct {
	Strategy    string   `mapstructure:"strategy"`
	MetricsAddr string   `mapstructure:"metrics_addr"`
	Safe        SafeFile `mapstructure:"safe"`
}

// SafeFile mirrors SafeConfig with session times as "HH:MM" strings.
type SafeFile struct {
	EMAPeriod    int     `mapstructure:"ema_period"`
	ATRPeriod    int     `mapstructure:"atr_period"`
	StopMult     float64 `mapstructure:"stop_mult"`
	TargetMult   float64 `mapstructure:"target_mult"`
	BufferMult   float64 `mapstructure:"buffer_mult"`
	VolumeMult   float64 `mapstructure:"volume_mult"`
	SessionStart string  `mapstructure:"session_start"`
	SessionEnd   string  `mapstructure:"session_end"`
}

// Load reads a YAML config file and resolves it against the defaults.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
	}
	v.SetDefault("strategy", "safe")
	v.SetDefault("metrics_addr", ":9090")
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	return &f, nil
}

// SafeConfig merges the file values over DefaultSafeConfig and validates the
// result.
func (f *File) SafeConfig() (SafeConfig, error) {
	cfg := DefaultSafeConfig()
	if f.Safe.EMAPeriod > 0 {
		cfg.EMAPeriod = f.Safe.EMAPeriod
	}
	if f.Safe.ATRPeriod > 0 {
		cfg.ATRPeriod = f.Safe.ATRPeriod
	}
	if f.Safe.StopMult > 0 {
		cfg.StopMult = f.Safe.StopMult
	}
	if f.Safe.TargetMult > 0 {
		cfg.TargetMult = f.Safe.TargetMult
	}
	if f.Safe.BufferMult > 0 {
		cfg.BufferMult = f.Safe.BufferMult
	}
	if f.Safe.VolumeMult > 0 {
		cfg.VolumeMult = f.Safe.VolumeMult
	}
	if f.Safe.SessionStart != "" {
		td, err := session.Parse(f.Safe.SessionStart)
		if err != nil {
			return SafeConfig{}, fmt.Errorf("session_start: %w", err)
		}
		cfg.Session.Start = td
	}
	if f.Safe.SessionEnd != "" {
		td, err := session.Parse(f.Safe.SessionEnd)
		if err != nil {
			return SafeConfig{}, fmt.Errorf("session_end: %w", err)
		}
		cfg.Session.End = td
	}
	if err := cfg.Validate(); err != nil {
		return SafeConfig{}, err
	}
	return cfg, nil
}
