package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yikk/lolsettings/constant"
	"github.com/yikk/lolsettings/core"
	"github.com/yikk/lolsettings/internal/config"
	"github.com/yikk/lolsettings/internal/logger"
	"github.com/yikk/lolsettings/locate"
	"github.com/yikk/lolsettings/model"
	"github.com/yikk/lolsettings/render"
	"github.com/yikk/lolsettings/store"
)

// session is everything the menu needs from the outside world.
type session struct {
	fs          afero.Fs
	in          io.Reader
	out         *render.Printer
	interactive bool
}

func InitCLI() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:   constant.ProjectName,
		Short: "Back up and restore the League of Legends client settings",
		Long: "Finds PersistedSettings.json under the game's Game/Config folder and keeps a\n" +
			"single backup of it in %APPDATA%\\" + constant.AssistantName + ".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig()
			if err != nil {
				return errors.Wrap(err, "failed to initialize config")
			}
			logger.SetupLogger(cfg.LogLevel)

			lock, err := core.AcquireInstanceLock("", "")
			if err != nil {
				return err
			}
			defer func() { _ = lock.Release() }()

			return run(cfg, session{
				fs:          afero.NewOsFs(),
				in:          os.Stdin,
				out:         render.NewStdoutPrinter(),
				interactive: term.IsTerminal(int(os.Stdin.Fd())),
			})
		},
	}
	return RootCmd
}

func run(cfg *model.Config, s session) error {
	locator := locate.NewLocator(s.fs, cfg, locate.NewVolumeLister(cfg.Volumes))
	backup := store.NewBackup(s.fs, cfg)

	ctrl := core.NewController(cfg, locator, backup, s.in, s.out)
	ctrl.SetInteractive(s.interactive)

	logrus.WithFields(logrus.Fields{
		"folder": cfg.FolderName,
		"file":   cfg.TargetRelPath(),
	}).Debug("starting")
	return ctrl.Run()
}
