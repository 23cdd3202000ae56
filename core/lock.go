package core

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yikk/lolsettings/constant"
)

// ErrAlreadyRunning is returned when another instance holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// InstanceLock keeps two copies of the tool from working on the same backup
// slot at once.
type InstanceLock struct {
	flock *flock.Flock
}

// AcquireInstanceLock takes <dir>/<name>.lock without blocking. Empty dir
// and name default to the temp dir and the project name.
func AcquireInstanceLock(dir, name string) (*InstanceLock, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if name == "" {
		name = constant.ProjectName
	}
	path := filepath.Join(dir, name+".lock")

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", path)
	}
	if !locked {
		logrus.Warn("Another instance is already running. Exiting.")
		logrus.Warn("If this is not the case, please delete the lock file: ", path)
		return nil, ErrAlreadyRunning
	}
	logrus.WithField("path", path).Debug("instance lock acquired")
	return &InstanceLock{flock: fl}, nil
}

// Path returns the lock file location.
func (l *InstanceLock) Path() string {
	return l.flock.Path()
}

// Release unlocks; the lock file itself stays for the next run.
func (l *InstanceLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		logrus.Error("Failed to release instance lock: ", err)
		return err
	}
	return nil
}
