package locate

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/yikk/lolsettings/model"
)

// Prober checks a game folder candidate for the target file.
type Prober struct {
	fs      afero.Fs
	relPath string
}

// NewProber creates a prober for cfg's Game/Config/<file> pattern.
func NewProber(fs afero.Fs, cfg *model.Config) *Prober {
	return &Prober{fs: fs, relPath: cfg.TargetRelPath()}
}

// Probe returns base/<pattern>/<file> when it exists as a regular file and
// "" otherwise. Absence is not an error.
func (p *Prober) Probe(base string) string {
	full := filepath.Join(base, p.relPath)
	info, err := p.fs.Stat(full)
	if err != nil {
		return ""
	}
	if !info.Mode().IsRegular() {
		logrus.WithField("path", full).Debug("candidate exists but is not a regular file")
		return ""
	}
	return full
}
