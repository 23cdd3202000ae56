package model

import (
	"path/filepath"
	"runtime"

	"github.com/yikk/lolsettings/constant"
)

// Config is the process-wide immutable description of what to look for and
// where backups live. It is built once and handed to the locator and the
// backup store.
type Config struct {
	// target file
	FileName     string   `mapstructure:"file_name" yaml:"file_name"`
	ConfigSubdir []string `mapstructure:"config_subdir" yaml:"config_subdir"`
	FolderName   string   `mapstructure:"folder_name" yaml:"folder_name"`

	// search
	CandidatePaths []string `mapstructure:"candidate_paths" yaml:"candidate_paths"`
	Volumes        []string `mapstructure:"volumes" yaml:"volumes"`
	ScanExclude    []string `mapstructure:"scan_exclude" yaml:"scan_exclude"`
	NearMissLimit  int      `mapstructure:"near_miss_limit" yaml:"near_miss_limit"`

	// backup
	BackupDirName string `mapstructure:"backup_dir_name" yaml:"backup_dir_name"`
	AppDataRoot   string `mapstructure:"app_data_root" yaml:"app_data_root"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

const defaultFolderName = "英雄联盟"

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		FileName:     "PersistedSettings.json",
		ConfigSubdir: []string{"Game", "Config"},
		FolderName:   defaultFolderName,
		// most likely install locations first
		CandidatePaths: []string{
			defaultFolderName,
			filepath.Join("Program Files", defaultFolderName),
			filepath.Join("Program Files (x86)", defaultFolderName),
			filepath.Join("WeGameApps", defaultFolderName),
			filepath.Join("Software", "WeGame", "Apps", defaultFolderName),
		},
		Volumes:       nil,
		ScanExclude:   defaultScanExclude(),
		NearMissLimit: 5,
		BackupDirName: constant.AssistantName,
		AppDataRoot:   "",
		LogLevel:      "info",
	}
}

func defaultScanExclude() []string {
	if runtime.GOOS == "windows" {
		return []string{"$Recycle.Bin", "System Volume Information"}
	}
	return []string{"/proc", "/sys", "/dev", "/run"}
}

// TargetRelPath is the path of the config file relative to the game folder,
// e.g. Game/Config/PersistedSettings.json.
func (c *Config) TargetRelPath() string {
	parts := append(append([]string{}, c.ConfigSubdir...), c.FileName)
	return filepath.Join(parts...)
}

// HiddenBackupDirName is the fallback folder name used under the working
// directory when no app-data root is known.
func (c *Config) HiddenBackupDirName() string {
	return "." + c.BackupDirName
}
