package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"input_file: satis_verileri.xlsx\nlog_level: debug\n",
	), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "satis_verileri.xlsx", cfg.InputFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Omitted fields keep their defaults.
	assert.Equal(t, "reports", cfg.ReportDir)
	assert.Equal(t, "sales_report_{timestamp}.xlsx", cfg.OutputNamePattern)
	assert.Equal(t, "backups", cfg.BackupDir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_file: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
