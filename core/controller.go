package core

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yikk/lolsettings/locate"
	"github.com/yikk/lolsettings/model"
	"github.com/yikk/lolsettings/pkg/util"
	"github.com/yikk/lolsettings/render"
)

// Locator finds the game's config file.
type Locator interface {
	Locate() (string, error)
}

// BackupStore is the single backup slot the menu operates on.
type BackupStore interface {
	Exists() (string, bool, error)
	Dir() (string, bool, error)
	Save(configPath string) (string, error)
	Restore(configPath string) error
	Delete(configPath string) (string, error)
}

// Controller drives startup (locate once) and the main menu loop.
type Controller struct {
	cfg     *model.Config
	locator Locator
	store   BackupStore
	in      *bufio.Scanner
	out     *render.Printer

	// interactive makes a failed startup wait for Enter before exiting.
	interactive bool
	elevated    func() bool

	configPath string
}

// NewController wires the menu to its input, output and backends.
func NewController(cfg *model.Config, locator Locator, store BackupStore, in io.Reader, out *render.Printer) *Controller {
	return &Controller{
		cfg:      cfg,
		locator:  locator,
		store:    store,
		in:       bufio.NewScanner(in),
		out:      out,
		elevated: util.IsElevated,
	}
}

// SetInteractive marks input as coming from a person at a terminal.
func (c *Controller) SetInteractive(interactive bool) {
	c.interactive = interactive
}

// ConfigPath is the located config file, empty before a successful startup.
func (c *Controller) ConfigPath() string {
	return c.configPath
}

// Run locates the config file and then serves the menu until the user
// exits. A failed locate returns an ExitError with TargetNotFound; end of
// input returns one with UserCanceled.
func (c *Controller) Run() error {
	if err := c.startup(); err != nil {
		return err
	}
	return c.mainLoop()
}

func (c *Controller) startup() error {
	c.out.Step("Searching for the game's config file, please wait...")
	path, err := c.locator.Locate()
	if err != nil {
		c.reportLocateFailure(err)
		c.pause()
		return model.NewExitError(model.TargetNotFound, err)
	}
	c.configPath = path
	c.out.Success("Found config file: %s", path)

	backupPath, ok, err := c.store.Exists()
	switch {
	case err != nil:
		c.out.Warning("Cannot determine the backup location: %v", err)
	case ok:
		c.out.Found("Existing backup: %s", backupPath)
	default:
		c.out.Info("No backup yet, backups will be saved to: %s", backupPath)
	}
	c.out.Divider()
	return nil
}

func (c *Controller) reportLocateFailure(err error) {
	c.out.Error("Could not find the game's config file automatically.")
	var notFound *locate.NotFoundError
	if errors.As(err, &notFound) {
		if len(notFound.NearMisses) > 0 {
			c.out.Plain("Similar folders seen during the scan:")
			for _, p := range notFound.NearMisses {
				c.out.Plain("  %s", p)
			}
		}
	} else {
		logrus.WithError(err).Debug("locate failed")
	}
	pattern := filepath.Join(append([]string{c.cfg.FolderName}, c.cfg.ConfigSubdir...)...)
	c.out.Plain("Make sure the game is installed and its path contains '%s'.", pattern)
}

func (c *Controller) mainLoop() error {
	for {
		c.out.Menu("Choose an action:", model.MainMenu)
		c.out.Prompt("Input: ")
		input, ok := c.readLine()
		if !ok {
			c.out.Plain("")
			logrus.Debug("input closed, leaving menu")
			return model.NewExitError(model.UserCanceled, nil)
		}

		choice, err := model.ParseChoice(input)
		if err != nil {
			c.out.Error("%s.", capitalize(err.Error()))
			continue
		}

		switch choice {
		case model.ChoiceSave:
			c.Save()
		case model.ChoiceRestore:
			c.Restore()
		case model.ChoiceDelete:
			c.DeleteBackups()
		case model.ChoiceExit:
			return nil
		}
	}
}

// Save backs up the config file after a separate confirmation.
func (c *Controller) Save() {
	c.out.Plain("You chose to save the current config.")
	if !c.confirm("Enter 1 again to confirm saving (this overwrites the existing backup): ") {
		c.out.Info("Operation cancelled.")
		return
	}
	backupPath, err := c.store.Save(c.configPath)
	if err != nil {
		c.out.Error("Save failed: %v", err)
		return
	}
	c.out.Success("Config saved to: %s", backupPath)
}

// Restore applies the backup over the config file. No confirmation is asked.
func (c *Controller) Restore() {
	_, ok, err := c.store.Exists()
	if err != nil {
		c.out.Error("Apply failed: %v", err)
		return
	}
	if !ok {
		c.out.Error("No saved config file found.")
		return
	}

	c.out.Step("Applying backup to: %s", c.configPath)
	if err := c.store.Restore(c.configPath); err != nil {
		c.out.Error("Apply failed: %v", err)
		if model.IsPermission(err) && !c.elevated() {
			c.out.Plain("Try running this program as administrator.")
		}
		return
	}
	c.out.Success("Config applied successfully!")
}

// DeleteBackups removes the backup folder after a separate confirmation.
func (c *Controller) DeleteBackups() {
	dir, exists, err := c.store.Dir()
	if err != nil {
		c.out.Error("Delete failed: %v", err)
		return
	}
	if !exists {
		c.out.Info("No backup folder found, nothing to delete.")
		return
	}

	c.out.Warning("Delete all backup data? (including folder %s)", dir)
	if !c.confirm("Enter 1 again to confirm deletion: ") {
		c.out.Info("Operation cancelled.")
		return
	}
	removed, err := c.store.Delete(c.configPath)
	if err != nil {
		if model.IsNotFound(err) {
			c.out.Info("No backup folder found, nothing to delete.")
			return
		}
		c.out.Error("Delete failed: %v", err)
		return
	}
	c.out.Success("Deleted backup: %s", removed)
}

// confirm asks the second step of a destructive action. Anything other than
// the confirmation token, including closed input, declines.
func (c *Controller) confirm(prompt string) bool {
	c.out.Prompt(prompt)
	input, ok := c.readLine()
	if !ok {
		c.out.Plain("")
		return false
	}
	return model.IsConfirmation(input)
}

func (c *Controller) pause() {
	if !c.interactive {
		return
	}
	c.out.Prompt("Press Enter to exit...")
	c.readLine()
}

func (c *Controller) readLine() (string, bool) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			logrus.WithError(err).Warn("failed to read input")
		}
		return "", false
	}
	return c.in.Text(), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
