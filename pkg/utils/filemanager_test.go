package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNamePattern(t *testing.T) {
	now := time.Date(2024, 12, 31, 14, 35, 7, 0, time.UTC)

	assert.Equal(t, "sales_report_20241231_143507.xlsx",
		ExpandNamePattern("sales_report_{timestamp}.xlsx", now))
	assert.Equal(t, "report_20241231.xlsx",
		ExpandNamePattern("report_{date}.xlsx", now))
	assert.Equal(t, "fixed_name.xlsx",
		ExpandNamePattern("fixed_name.xlsx", now), "patterns without placeholders pass through")

	expanded := ExpandNamePattern("report_{uuid}.xlsx", now)
	assert.True(t, strings.HasPrefix(expanded, "report_"))
	assert.True(t, strings.HasSuffix(expanded, ".xlsx"))
	assert.NotContains(t, expanded, "{uuid}")
	assert.NotEqual(t, expanded, ExpandNamePattern("report_{uuid}.xlsx", now), "uuid names are unique per call")
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir), "creating an existing directory is a no-op")

	assert.False(t, FileExists(dir), "directories are not files")

	path := filepath.Join(dir, "data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.xlsx")))
}

func TestBackupCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sales_data_master.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("workbook bytes"), 0644))

	backupDir := filepath.Join(dir, "backups")
	backupPath, err := BackupCopy(src, backupDir)
	require.NoError(t, err)

	assert.Equal(t, backupDir, filepath.Dir(backupPath))
	base := filepath.Base(backupPath)
	assert.True(t, strings.HasPrefix(base, "backup_"))
	assert.True(t, strings.HasSuffix(base, "_sales_data_master.xlsx"))

	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook bytes"), copied)
}

func TestBackupCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := BackupCopy(filepath.Join(dir, "missing.xlsx"), filepath.Join(dir, "backups"))
	assert.Error(t, err)
}
