// =============================================================================
// Sales Reporting Engine - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration is deliberately small: where the sales data lives, where
// reports go, how output files are named, and logging/backup settings.
//
// ZERO-CONFIG OPERATION:
//   The CLI must work without any configuration file (the original tool was
//   a single script with built-in defaults). When the config file does not
//   exist, Load returns the defaults; an unreadable or malformed file is an
//   error.
//
// The source file path is an explicit configuration value handed to the
// pipeline call — never a process-wide mutable variable.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputFile is the default source workbook, used when the generate
	// command is invoked without an input argument.
	// Default: "sales_data_master.xlsx"
	InputFile string `yaml:"input_file"`

	// ReportDir is the directory where generated reports are written.
	// Default: "reports"
	ReportDir string `yaml:"report_dir"`

	// OutputNamePattern names generated report files. Placeholders:
	//   {timestamp} - generation time as yyyymmdd_hhmmss
	//   {date}      - generation date as yyyymmdd
	//   {uuid}      - a random UUID
	// Default: "sales_report_{timestamp}.xlsx"
	OutputNamePattern string `yaml:"output_name_pattern"`

	// BackupDir is the directory for input snapshots taken by
	// `generate --backup`.
	// Default: "backups"
	BackupDir string `yaml:"backup_dir"`

	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration used when no config file
// exists. The defaults match the original tool's conventions.
func Default() *Config {
	return &Config{
		InputFile:         "sales_data_master.xlsx",
		ReportDir:         "reports",
		OutputNamePattern: "sales_report_{timestamp}.xlsx",
		BackupDir:         "backups",
		LogLevel:          "info",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path. A missing file yields the
// defaults; a file that exists but cannot be read or parsed is an error.
// Fields omitted from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in any field the config file left empty.
func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.InputFile == "" {
		cfg.InputFile = defaults.InputFile
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = defaults.ReportDir
	}
	if cfg.OutputNamePattern == "" {
		cfg.OutputNamePattern = defaults.OutputNamePattern
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = defaults.BackupDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}
