package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yikk/lolsettings/model"
)

// denyFs wraps an afero.Fs, failing with a permission error for the listed
// paths and everything below them, and counting directory opens.
type denyFs struct {
	afero.Fs
	denied map[string]bool
	opens  int
}

func newDenyFs(denied ...string) *denyFs {
	d := &denyFs{Fs: afero.NewOsFs(), denied: map[string]bool{}}
	for _, p := range denied {
		d.denied[filepath.Clean(p)] = true
	}
	return d
}

func (d *denyFs) isDenied(name string) bool {
	for p := filepath.Clean(name); ; p = filepath.Dir(p) {
		if d.denied[p] {
			return true
		}
		if filepath.Dir(p) == p {
			return false
		}
	}
}

func (d *denyFs) Open(name string) (afero.File, error) {
	d.opens++
	if d.isDenied(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

func (d *denyFs) Stat(name string) (os.FileInfo, error) {
	if d.isDenied(name) {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Stat(name)
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.ScanExclude = nil
	return cfg
}

// writeTarget creates <gameDir>/Game/Config/PersistedSettings.json and
// returns its path.
func writeTarget(t *testing.T, gameDir string) string {
	t.Helper()
	dir := filepath.Join(gameDir, "Game", "Config")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "PersistedSettings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"files":[]}`), 0o644))
	return path
}

func TestLocateFastPhase(t *testing.T) {
	vol := t.TempDir()
	expected := writeTarget(t, filepath.Join(vol, "Program Files", "英雄联盟"))
	// would also be found by a deep scan
	writeTarget(t, filepath.Join(vol, "aaa", "英雄联盟"))

	fs := newDenyFs()
	locator := NewLocator(fs, testConfig(), StaticVolumes{vol})

	found, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
	assert.Zero(t, fs.opens, "fast phase must not read directories")
}

func TestLocateFastPhaseOrdering(t *testing.T) {
	vol1 := t.TempDir()
	vol2 := t.TempDir()

	// candidate order within a volume
	writeTarget(t, filepath.Join(vol1, "WeGameApps", "英雄联盟"))
	expected := writeTarget(t, filepath.Join(vol1, "Program Files (x86)", "英雄联盟"))
	// volume order beats candidate order
	writeTarget(t, filepath.Join(vol2, "英雄联盟"))

	locator := NewLocator(afero.NewOsFs(), testConfig(), StaticVolumes{vol1, vol2})

	found, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestLocateDeepPhaseAnyDepth(t *testing.T) {
	vol := t.TempDir()
	expected := writeTarget(t, filepath.Join(vol, "a", "b", "c", "d", "e", "英雄联盟"))

	locator := NewLocator(afero.NewOsFs(), testConfig(), StaticVolumes{vol})

	found, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestLocateDeepPhaseSkipsFolderWithoutConfig(t *testing.T) {
	vol := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(vol, "a", "英雄联盟", "Game"), 0o755))
	expected := writeTarget(t, filepath.Join(vol, "b", "英雄联盟"))

	locator := NewLocator(afero.NewOsFs(), testConfig(), StaticVolumes{vol})

	found, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestLocateDeepPhaseFirstMatchWins(t *testing.T) {
	vol := t.TempDir()
	expected := writeTarget(t, filepath.Join(vol, "a", "英雄联盟"))
	writeTarget(t, filepath.Join(vol, "b", "英雄联盟"))

	locator := NewLocator(afero.NewOsFs(), testConfig(), StaticVolumes{vol})

	found, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestLocateSkipsUnreadableSubtree(t *testing.T) {
	vol := t.TempDir()
	writeTarget(t, filepath.Join(vol, "a", "英雄联盟"))
	expected := writeTarget(t, filepath.Join(vol, "b", "英雄联盟"))

	fs := newDenyFs(filepath.Join(vol, "a"))
	locator := NewLocator(fs, testConfig(), StaticVolumes{vol})

	found, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestLocateNotFoundWithInaccessibleVolumes(t *testing.T) {
	denied := t.TempDir()
	writeTarget(t, filepath.Join(denied, "英雄联盟"))
	partial := t.TempDir()
	writeTarget(t, filepath.Join(partial, "locked", "英雄联盟"))
	require.NoError(t, os.MkdirAll(filepath.Join(partial, "open", "stuff"), 0o755))
	missing := filepath.Join(t.TempDir(), "not-mounted")

	fs := newDenyFs(denied, filepath.Join(partial, "locked"))
	locator := NewLocator(fs, testConfig(), StaticVolumes{denied, missing, partial})

	found, err := locator.Locate()
	require.Error(t, err)
	assert.Empty(t, found)
	assert.ErrorIs(t, err, model.ErrNotFound)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "英雄联盟", notFound.FolderName)
}

func TestLocateNoVolumes(t *testing.T) {
	locator := NewLocator(afero.NewOsFs(), testConfig(), StaticVolumes{})

	_, err := locator.Locate()
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLocateReportsNearMisses(t *testing.T) {
	vol := t.TempDir()
	renamed := filepath.Join(vol, "games", "英雄联盟(旧)")
	empty := filepath.Join(vol, "old", "英雄联盟")
	require.NoError(t, os.MkdirAll(renamed, 0o755))
	require.NoError(t, os.MkdirAll(empty, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(vol, "docs"), 0o755))

	locator := NewLocator(afero.NewOsFs(), testConfig(), StaticVolumes{vol})

	_, err := locator.Locate()
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.ElementsMatch(t, []string{renamed, empty}, notFound.NearMisses)
}

func TestLocateNearMissLimit(t *testing.T) {
	vol := t.TempDir()
	for _, name := range []string{"英雄联盟1", "英雄联盟2", "英雄联盟3"} {
		require.NoError(t, os.MkdirAll(filepath.Join(vol, name), 0o755))
	}
	cfg := testConfig()
	cfg.NearMissLimit = 2

	_, err := NewLocator(afero.NewOsFs(), cfg, StaticVolumes{vol}).Locate()
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Len(t, notFound.NearMisses, 2)
}

func TestLocateHonorsScanExclude(t *testing.T) {
	vol := t.TempDir()
	writeTarget(t, filepath.Join(vol, "$Recycle.Bin", "英雄联盟"))
	writeTarget(t, filepath.Join(vol, "mnt", "英雄联盟"))

	cfg := testConfig()
	cfg.ScanExclude = []string{"$Recycle.Bin", filepath.Join(vol, "mnt")}

	_, err := NewLocator(afero.NewOsFs(), cfg, StaticVolumes{vol}).Locate()
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLocateCustomFolderName(t *testing.T) {
	vol := t.TempDir()
	expected := writeTarget(t, filepath.Join(vol, "Riot Games", "League of Legends"))

	cfg := testConfig()
	cfg.FolderName = "League of Legends"
	cfg.CandidatePaths = nil

	found, err := NewLocator(afero.NewOsFs(), cfg, StaticVolumes{vol}).Locate()
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}
