package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yikk/lolsettings/constant"
	"github.com/yikk/lolsettings/model"
)

// getConfigPaths returns the config directory paths in priority order
func getConfigPaths() []string {
	var paths []string
	if xdg.ConfigHome != "" {
		paths = append(paths, filepath.Join(xdg.ConfigHome, constant.ProjectName))
	}
	if xdg.Home != "" {
		paths = append(paths, filepath.Join(xdg.Home, "."+constant.ProjectName))
	}
	paths = append(paths, ".")
	return paths
}

// InitConfig builds the tool configuration with this priority:
// 1. Environment variables (APPDATA for the app-data root)
// 2. Config file
// 3. Defaults
func InitConfig() (*model.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range getConfigPaths() {
		v.AddConfigPath(path)
	}

	if err := SetViperEnvSettings(v); err != nil {
		return nil, err
	}
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
		// no config file is fine, defaults + env apply
	} else {
		logrus.WithField("path", v.ConfigFileUsed()).Debug("using config file")
	}

	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}
	// aliases move camelCase values already read onto their canonical keys
	registerConfigKeyAliases(v)

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *model.Config) error {
	switch {
	case cfg.FileName == "":
		return errors.New("file_name must not be empty")
	case cfg.FolderName == "":
		return errors.New("folder_name must not be empty")
	case cfg.BackupDirName == "":
		return errors.New("backup_dir_name must not be empty")
	case filepath.Base(cfg.BackupDirName) != cfg.BackupDirName:
		return errors.Errorf("backup_dir_name %q must be a single folder name", cfg.BackupDirName)
	case cfg.NearMissLimit < 0:
		return errors.Errorf("near_miss_limit must not be negative, got %d", cfg.NearMissLimit)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	return nil
}
