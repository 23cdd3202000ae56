package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/yikk/lolsettings/constant"
	"github.com/yikk/lolsettings/model"
)

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()
	v.SetDefault("file_name", defaults.FileName)
	v.SetDefault("config_subdir", defaults.ConfigSubdir)
	v.SetDefault("folder_name", defaults.FolderName)
	v.SetDefault("candidate_paths", defaults.CandidatePaths)
	v.SetDefault("volumes", []string{})
	v.SetDefault("scan_exclude", defaults.ScanExclude)
	v.SetDefault("near_miss_limit", defaults.NearMissLimit)
	v.SetDefault("backup_dir_name", defaults.BackupDirName)
	v.SetDefault("app_data_root", defaults.AppDataRoot)
	v.SetDefault("log_level", defaults.LogLevel)
}

// SetViperEnvSettings configures viper environment variable settings.
// LOLSETTINGS_<KEY> overrides any key; the app-data root also honors the
// system APPDATA variable.
func SetViperEnvSettings(v *viper.Viper) error {
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("app_data_root", constant.EnvPrefix+"_APP_DATA_ROOT", "APPDATA"); err != nil {
		return errors.Wrap(err, "error binding app_data_root")
	}
	return nil
}
