// file: internal/fileops/write_guard.go
// version: 1.1.0
// guid: 8f7e6d5c-4b3a-2918-7f6e-5d4c3b2a1908

// Package fileops provides safe in-place file mutation: timestamped
// backups, checksum verification, and rollback for tag writes.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// GuardConfig configures the write guard.
type GuardConfig struct {
	// BackupDir is where backups are stored; relative paths resolve
	// against the guarded file's directory.
	BackupDir string
	// VerifyChecksums records the file's SHA256 before the write so a
	// rollback can confirm restoration.
	VerifyChecksums bool
	// KeepBackup retains the backup even after Commit.
	KeepBackup bool
	// MaxBackups limits retained backups per file; 0 means no limit.
	MaxBackups int
}

// DefaultGuardConfig returns the default write guard configuration.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		BackupDir:       ".audiotag-backups",
		VerifyChecksums: true,
		KeepBackup:      false,
		MaxBackups:      5,
	}
}

// WriteGuard protects one in-place file mutation. Begin snapshots the
// file, Rollback restores it after a failed write, Commit discards the
// snapshot after a successful one.
type WriteGuard struct {
	config       GuardConfig
	path         string
	backupPath   string
	originalHash string
}

// Begin snapshots path before mutation.
func Begin(path string, config GuardConfig) (*WriteGuard, error) {
	backupDir := config.BackupDir
	if !filepath.IsAbs(backupDir) {
		backupDir = filepath.Join(filepath.Dir(path), backupDir)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	backupName := fmt.Sprintf("%s.%s.backup", filepath.Base(path), timestamp)

	g := &WriteGuard{
		config:     config,
		path:       path,
		backupPath: filepath.Join(backupDir, backupName),
	}

	if config.VerifyChecksums {
		hash, err := ComputeFileHash(path)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate checksum: %w", err)
		}
		g.originalHash = hash
	}

	if err := copyFile(path, g.backupPath); err != nil {
		return nil, fmt.Errorf("failed to back up file: %w", err)
	}

	return g, nil
}

// BackupPath returns the location of the snapshot.
func (g *WriteGuard) BackupPath() string { return g.backupPath }

// Rollback restores the guarded file from its snapshot and verifies the
// restoration when checksums are enabled.
func (g *WriteGuard) Rollback() error {
	if err := copyFile(g.backupPath, g.path); err != nil {
		return fmt.Errorf("failed to restore from backup: %w", err)
	}
	if g.config.VerifyChecksums {
		hash, err := ComputeFileHash(g.path)
		if err != nil {
			return fmt.Errorf("failed to verify restored file: %w", err)
		}
		if hash != g.originalHash {
			return fmt.Errorf("checksum mismatch: restore failed integrity check")
		}
	}
	return nil
}

// Commit finalizes the mutation, removing the snapshot unless the
// configuration keeps it, and prunes old backups past the limit.
func (g *WriteGuard) Commit() error {
	if !g.config.KeepBackup {
		if err := os.Remove(g.backupPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove backup: %w", err)
		}
		return nil
	}
	return g.cleanupOldBackups()
}

// cleanupOldBackups removes excess backups for the guarded file, oldest
// first.
func (g *WriteGuard) cleanupOldBackups() error {
	if g.config.MaxBackups <= 0 {
		return nil
	}

	pattern := filepath.Join(filepath.Dir(g.backupPath),
		fmt.Sprintf("%s.*.backup", filepath.Base(g.path)))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) <= g.config.MaxBackups {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		ii, ierr := os.Stat(matches[i])
		jj, jerr := os.Stat(matches[j])
		if ierr != nil || jerr != nil {
			return matches[i] < matches[j]
		}
		return ii.ModTime().Before(jj.ModTime())
	})
	for _, old := range matches[:len(matches)-g.config.MaxBackups] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
