// Package config holds the hoursreport user settings, read with viper from
// ~/.config/hoursreport/config.yaml and HOURSREPORT_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	rerr "github.com/alexanderramin/hoursreport/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. HOURSREPORT_REPORT_OUTPUT_NAME.
const EnvPrefix = "HOURSREPORT"

// Settings is the complete user configuration
type Settings struct {
	Report  ReportSettings  `mapstructure:"report"`
	Configs ConfigsSettings `mapstructure:"configs"`
	History HistorySettings `mapstructure:"history"`
	Persist PersistSettings `mapstructure:"persist"`
	Logging LoggingSettings `mapstructure:"logging"`
}

// ReportSettings controls the generated workbook
type ReportSettings struct {
	TotalSheetFirst bool   `mapstructure:"total_sheet_first"`
	OpenViewer      bool   `mapstructure:"open_viewer"`
	OutputName      string `mapstructure:"output_name" validate:"required,endswith=.xlsx"`
	DataDir         string `mapstructure:"data_dir"`
	// DefaultConfig is used when --config is omitted, before any prompt
	DefaultConfig string `mapstructure:"default_config"`
}

// ConfigsSettings locates file-based project configurations
type ConfigsSettings struct {
	Dir string `mapstructure:"dir"`
}

// HistorySettings controls the run history store
type HistorySettings struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path" validate:"required_if=Enabled true"`
	// Keep is the number of newest runs retained; 0 keeps all
	Keep int `mapstructure:"keep" validate:"min=0"`
}

// PersistSettings bounds save retries
type PersistSettings struct {
	Retries      int `mapstructure:"retries" validate:"min=0,max=20"`
	RetryDelayMs int `mapstructure:"retry_delay_ms" validate:"min=0,max=60000"`
}

// RetryDelay returns the retry delay as a time.Duration
func (p PersistSettings) RetryDelay() time.Duration {
	return time.Duration(p.RetryDelayMs) * time.Millisecond
}

// LoggingSettings configures internal/logger
type LoggingSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error off disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Default returns the built-in settings
func Default() *Settings {
	dir := ConfigDir()
	return &Settings{
		Report: ReportSettings{
			TotalSheetFirst: true,
			OutputName:      "HoursReport.xlsx",
			DataDir:         "data",
		},
		Configs: ConfigsSettings{Dir: filepath.Join(dir, "projects")},
		History: HistorySettings{Enabled: true, DBPath: filepath.Join(dir, "history.db"), Keep: 200},
		Persist: PersistSettings{Retries: 3, RetryDelayMs: 500},
		Logging: LoggingSettings{Level: "warn", Format: "console"},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("report.total_sheet_first", d.Report.TotalSheetFirst)
	v.SetDefault("report.open_viewer", d.Report.OpenViewer)
	v.SetDefault("report.output_name", d.Report.OutputName)
	v.SetDefault("report.data_dir", d.Report.DataDir)
	v.SetDefault("report.default_config", d.Report.DefaultConfig)

	v.SetDefault("configs.dir", d.Configs.Dir)

	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.db_path", d.History.DBPath)
	v.SetDefault("history.keep", d.History.Keep)

	v.SetDefault("persist.retries", d.Persist.Retries)
	v.SetDefault("persist.retry_delay_ms", d.Persist.RetryDelayMs)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// New returns a viper instance with defaults, env overrides and the config
// file loaded. An explicit cfgFile must exist; the default file is optional.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, rerr.Wrapf(err, rerr.KindConfig, "reading settings")
		}
	}
	return v, nil
}

// Load unmarshals and validates the settings held by v
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, rerr.Wrapf(err, rerr.KindConfig, "decoding settings")
	}
	s.Configs.Dir = expandHome(s.Configs.Dir)
	s.History.DBPath = expandHome(s.History.DBPath)
	s.Report.DataDir = expandHome(s.Report.DataDir)

	if errs := Validate(&s); len(errs) > 0 {
		return nil, rerr.List(rerr.KindConfig, "invalid settings", errs)
	}
	return &s, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hoursreport")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hoursreport"
	}
	return filepath.Join(home, ".config", "hoursreport")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
