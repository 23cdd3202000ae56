package store

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// copyFile replaces dst with the bytes of src. Data goes to a temp file in
// dst's directory which is then renamed over dst, so dst holds either its
// old content or the complete new content.
func copyFile(fs afero.Fs, src, dst string) (err error) {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", src)
	}

	dir := filepath.Dir(dst)
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := fs.Remove(tmpName); rmErr != nil {
				logrus.WithError(rmErr).WithField("path", tmpName).Debug("failed to remove temp file")
			}
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "copy %s to %s", src, dst)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "sync %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if chErr := fs.Chmod(tmpName, info.Mode().Perm()); chErr != nil {
		logrus.WithError(chErr).WithField("path", tmpName).Debug("failed to copy file mode")
	}
	if err = fs.Rename(tmpName, dst); err != nil {
		return errors.Wrapf(err, "replace %s", dst)
	}
	return nil
}
