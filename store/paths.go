package store

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// preferredDir is <AppDataRoot>/<BackupDirName>, or the hidden
// <cwd>/.<BackupDirName> when no app-data root is known.
func (b *Backup) preferredDir() (string, error) {
	if b.cfg.AppDataRoot != "" {
		return filepath.Join(b.cfg.AppDataRoot, b.cfg.BackupDirName), nil
	}
	cwd, err := b.getwd()
	if err != nil {
		return "", errors.Wrap(err, "determine working directory")
	}
	return filepath.Join(cwd, b.cfg.HiddenBackupDirName()), nil
}

// resolveDir returns the backup directory, creating it when needed. When it
// cannot be created the working directory itself is used.
func (b *Backup) resolveDir() (dir string, dedicated bool, err error) {
	preferred, err := b.preferredDir()
	if err != nil {
		return "", false, err
	}
	if isDir(b.fs, preferred) {
		return preferred, true, nil
	}
	mkErr := b.fs.MkdirAll(preferred, 0o755)
	if mkErr == nil {
		logrus.WithField("dir", preferred).Debug("created backup directory")
		return preferred, true, nil
	}
	logrus.WithError(mkErr).WithField("dir", preferred).Warn("cannot create backup directory, falling back to working directory")
	cwd, err := b.getwd()
	if err != nil {
		return "", false, errors.Wrap(err, "determine working directory")
	}
	return cwd, false, nil
}

// existingDir finds where a previous run left its backup without creating
// anything. ok is false when there is no backup directory at all.
func (b *Backup) existingDir() (dir string, dedicated bool, ok bool, err error) {
	preferred, err := b.preferredDir()
	if err != nil {
		return "", false, false, err
	}
	if isDir(b.fs, preferred) {
		return preferred, true, true, nil
	}
	// the working directory only holds backups when the preferred directory
	// cannot be created
	if !blocked(b.fs, preferred) {
		return "", false, false, nil
	}
	cwd, err := b.getwd()
	if err != nil {
		return "", false, false, errors.Wrap(err, "determine working directory")
	}
	if isRegular(b.fs, filepath.Join(cwd, b.cfg.FileName)) {
		return cwd, false, true, nil
	}
	return "", false, false, nil
}

// blocked reports whether MkdirAll(dir) is bound to fail: dir or its
// nearest existing ancestor is not a directory, cannot be stat'ed, or is a
// directory without write permission.
func blocked(fs afero.Fs, dir string) bool {
	for p := filepath.Clean(dir); ; p = filepath.Dir(p) {
		info, err := fs.Stat(p)
		switch {
		case err == nil && !info.IsDir():
			return true
		case err == nil:
			return p != dir && info.Mode().Perm()&0o200 == 0
		case !os.IsNotExist(err):
			return true
		}
		if filepath.Dir(p) == p {
			return false
		}
	}
}

func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

func isRegular(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// samePath compares two paths after making them absolute; Windows paths
// compare case-insensitively.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		absA, absB = filepath.Clean(a), filepath.Clean(b)
	}
	if runtime.GOOS == "windows" {
		return strings.EqualFold(absA, absB)
	}
	return absA == absB
}

