package locate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/yikk/lolsettings/model"
)

// errStopWalk short-circuits afero.Walk once the target is found.
var errStopWalk = errors.New("target found")

// NotFoundError is returned when no volume holds the target file. It
// matches model.ErrNotFound with errors.Is.
type NotFoundError struct {
	FolderName string
	// NearMisses are folders seen during the deep scan whose names resemble
	// FolderName, or that are named FolderName but lack the config file.
	NearMisses []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %q folder containing the config file was found", e.FolderName)
}

// Is lets errors.Is(err, model.ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == model.ErrNotFound
}

// Locator finds the game's config file: a bounded probe of well-known
// install paths first, then a recursive scan of every volume.
type Locator struct {
	fs      afero.Fs
	cfg     *model.Config
	volumes VolumeLister
	prober  *Prober
}

// NewLocator creates a locator reading through fs.
func NewLocator(fs afero.Fs, cfg *model.Config, volumes VolumeLister) *Locator {
	return &Locator{
		fs:      fs,
		cfg:     cfg,
		volumes: volumes,
		prober:  NewProber(fs, cfg),
	}
}

// Locate returns the absolute path of the config file. The first match in
// volume order wins; a miss is reported as *NotFoundError.
func (l *Locator) Locate() (string, error) {
	vols := l.volumes.Volumes()
	if len(vols) == 0 {
		logrus.Warn("no volumes available to search")
	}

	if found := l.fastSearch(vols); found != "" {
		return found, nil
	}

	logrus.Info("config file not at a common install path, scanning all volumes (this can take minutes)")
	return l.deepSearch(vols)
}

func (l *Locator) fastSearch(vols []string) string {
	for _, vol := range vols {
		for _, sub := range l.cfg.CandidatePaths {
			if found := l.prober.Probe(filepath.Join(vol, sub)); found != "" {
				logrus.WithField("path", found).Debug("found config at common install path")
				return found
			}
		}
	}
	return ""
}

func (l *Locator) deepSearch(vols []string) (string, error) {
	misses := &nearMisses{pattern: l.cfg.FolderName, limit: l.cfg.NearMissLimit}
	for _, vol := range vols {
		found, err := l.scanVolume(vol, misses)
		if err != nil {
			logrus.WithError(err).WithField("volume", vol).Warn("volume scan aborted")
			continue
		}
		if found != "" {
			return found, nil
		}
	}
	return "", &NotFoundError{FolderName: l.cfg.FolderName, NearMisses: misses.paths}
}

// scanVolume walks vol depth-first in lexical order. Unreadable entries
// are skipped along with their subtree.
func (l *Locator) scanVolume(vol string, misses *nearMisses) (string, error) {
	logrus.WithField("volume", vol).Info("scanning volume")

	var found string
	err := afero.Walk(l.fs, vol, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", path).Debug("skipping unreadable path")
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != vol && l.excluded(path, info.Name()) {
			return filepath.SkipDir
		}
		if info.Name() == l.cfg.FolderName {
			if hit := l.prober.Probe(path); hit != "" {
				found = hit
				return errStopWalk
			}
		}
		misses.observe(path, info.Name())
		return nil
	})
	if errors.Is(err, errStopWalk) {
		return found, nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "scan %s", vol)
	}
	return "", nil
}

// excluded matches ScanExclude entries either as a full path (entries with
// a separator) or as a bare directory name.
func (l *Locator) excluded(path, name string) bool {
	for _, entry := range l.cfg.ScanExclude {
		if strings.ContainsAny(entry, `/\`) {
			if filepath.Clean(entry) == filepath.Clean(path) {
				return true
			}
			continue
		}
		if entry == name {
			return true
		}
	}
	return false
}

type nearMisses struct {
	pattern string
	limit   int
	paths   []string
}

func (n *nearMisses) observe(path, name string) {
	if n.pattern == "" || len(n.paths) >= n.limit {
		return
	}
	if len(fuzzy.Find(n.pattern, []string{name})) > 0 {
		n.paths = append(n.paths, path)
	}
}
