// Package store keeps the single-slot backup of the game's config file.
package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/yikk/lolsettings/model"
)

// Backup is the fixed backup slot <backup-dir>/<FileName>. Confirmation of
// destructive calls is the caller's job.
type Backup struct {
	fs    afero.Fs
	cfg   *model.Config
	getwd func() (string, error)
}

// NewBackup creates a backup store over fs.
func NewBackup(fs afero.Fs, cfg *model.Config) *Backup {
	return &Backup{fs: fs, cfg: cfg, getwd: os.Getwd}
}

// ResolvePath returns the backup file path, creating the backup directory
// as a side effect. Repeated calls return the same path.
func (b *Backup) ResolvePath() (string, error) {
	dir, _, err := b.resolveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, b.cfg.FileName), nil
}

// Dir reports the backup directory and whether it exists, without creating
// it.
func (b *Backup) Dir() (string, bool, error) {
	dir, _, ok, err := b.existingDir()
	if err != nil {
		return "", false, err
	}
	if ok {
		return dir, true, nil
	}
	preferred, err := b.preferredDir()
	return preferred, false, err
}

// Exists reports the backup file path and whether a backup is present.
// Nothing is created.
func (b *Backup) Exists() (string, bool, error) {
	dir, _, ok, err := b.existingDir()
	if err != nil {
		return "", false, err
	}
	if !ok {
		preferred, err := b.preferredDir()
		if err != nil {
			return "", false, err
		}
		return filepath.Join(preferred, b.cfg.FileName), false, nil
	}
	path := filepath.Join(dir, b.cfg.FileName)
	return path, isRegular(b.fs, path), nil
}

// Save copies configPath into the backup slot, replacing any prior backup.
// On failure the prior backup is left as it was.
func (b *Backup) Save(configPath string) (string, error) {
	backupPath, err := b.ResolvePath()
	if err != nil {
		return "", err
	}
	if samePath(configPath, backupPath) {
		return "", errors.Wrapf(model.ErrSameFile, "save %s", configPath)
	}
	if err := copyFile(b.fs, configPath, backupPath); err != nil {
		return "", errors.Wrap(err, "save backup")
	}
	logrus.WithField("backup", backupPath).Info("config saved")
	return backupPath, nil
}

// Restore copies the backup over configPath. Without a backup it returns
// model.ErrNotFound and touches nothing.
func (b *Backup) Restore(configPath string) error {
	backupPath, ok, err := b.Exists()
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(model.ErrNotFound, "backup %s", backupPath)
	}
	if samePath(configPath, backupPath) {
		return errors.Wrapf(model.ErrSameFile, "restore %s", configPath)
	}
	if err := copyFile(b.fs, backupPath, configPath); err != nil {
		return errors.Wrap(err, "restore backup")
	}
	logrus.WithField("target", configPath).Info("config restored")
	return nil
}

// Delete removes the backup directory with everything in it and returns the
// removed path. When backups fell back to the working directory only the
// backup file is removed, and never when it is configPath itself. Returns
// model.ErrNotFound when there is nothing to delete.
func (b *Backup) Delete(configPath string) (string, error) {
	dir, dedicated, ok, err := b.existingDir()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Wrap(model.ErrNotFound, "backup directory")
	}
	if !dedicated {
		path := filepath.Join(dir, b.cfg.FileName)
		if configPath != "" && samePath(configPath, path) {
			return "", errors.Wrapf(model.ErrSameFile, "delete %s", path)
		}
		if err := b.fs.Remove(path); err != nil {
			return "", errors.Wrapf(err, "remove %s", path)
		}
		logrus.WithField("path", path).Info("backup file removed")
		return path, nil
	}
	if err := b.fs.RemoveAll(dir); err != nil {
		return "", errors.Wrapf(err, "remove %s", dir)
	}
	logrus.WithField("dir", dir).Info("backup directory removed")
	return dir, nil
}
