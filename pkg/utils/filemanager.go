// =============================================================================
// Sales Reporting Engine - File Manager Utility
// =============================================================================
//
// File-level helpers shared by the CLI commands and the report pipeline:
//   - Directory management (create report/backup directories on demand)
//   - Output file naming ({timestamp}/{date}/{uuid} placeholder expansion)
//   - Input snapshots (timestamped backup copies before a run)
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir (and any parents) if it does not already exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ExpandNamePattern substitutes the naming placeholders in pattern:
//
//	{timestamp} - now as yyyymmdd_hhmmss
//	{date}      - now as yyyymmdd
//	{uuid}      - a random UUID
//
// A pattern without placeholders is returned unchanged.
func ExpandNamePattern(pattern string, now time.Time) string {
	name := pattern
	name = strings.ReplaceAll(name, "{timestamp}", now.Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{date}", now.Format("20060102"))
	if strings.Contains(name, "{uuid}") {
		name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	}
	return name
}

// =============================================================================
// INPUT SNAPSHOTS
// =============================================================================

// BackupCopy copies src into backupDir under a timestamped name
// (backup_<yyyymmdd_hhmmss>_<original name>) and returns the backup path.
// The backup directory is created if needed.
func BackupCopy(src, backupDir string) (string, error) {
	if err := EnsureDir(backupDir); err != nil {
		return "", err
	}

	name := fmt.Sprintf("backup_%s_%s", time.Now().Format("20060102_150405"), filepath.Base(src))
	dst := filepath.Join(backupDir, name)

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for backup: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write backup file %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize backup file %s: %w", dst, err)
	}

	return dst, nil
}
