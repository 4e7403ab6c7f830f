// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"time"

	"github.com/jdfalk/audiotag/internal/fileops"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	BackupDir       string
	VerifyChecksums bool
	KeepBackups     bool
	MaxBackups      int
	ScanWorkers     int
	WatchDebounce   time.Duration
	CacheTTL        time.Duration
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("backup_dir", ".audiotag-backups")
	viper.SetDefault("verify_checksums", true)
	viper.SetDefault("keep_backups", false)
	viper.SetDefault("max_backups", 5)
	viper.SetDefault("scan_workers", 4)
	viper.SetDefault("watch_debounce_seconds", 5)
	viper.SetDefault("cache_ttl_seconds", 300)

	AppConfig = Config{
		BackupDir:       viper.GetString("backup_dir"),
		VerifyChecksums: viper.GetBool("verify_checksums"),
		KeepBackups:     viper.GetBool("keep_backups"),
		MaxBackups:      viper.GetInt("max_backups"),
		ScanWorkers:     viper.GetInt("scan_workers"),
		WatchDebounce:   time.Duration(viper.GetInt("watch_debounce_seconds")) * time.Second,
		CacheTTL:        time.Duration(viper.GetInt("cache_ttl_seconds")) * time.Second,
	}

	if AppConfig.ScanWorkers < 1 {
		AppConfig.ScanWorkers = 1
	}
}

// Guard builds the write-guard configuration for tag writes.
func Guard() fileops.GuardConfig {
	cfg := fileops.DefaultGuardConfig()
	if AppConfig.BackupDir != "" {
		cfg.BackupDir = AppConfig.BackupDir
	}
	cfg.VerifyChecksums = AppConfig.VerifyChecksums
	cfg.KeepBackup = AppConfig.KeepBackups
	cfg.MaxBackups = AppConfig.MaxBackups
	return cfg
}
