package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yikk/lolsettings/internal/cli"
	"github.com/yikk/lolsettings/internal/logger"
	"github.com/yikk/lolsettings/model"
)

func main() {
	cmd := cli.InitCLI()
	logger.SetupLogger("info")
	code, err := model.ExitCodeFromError(cmd.Execute())
	if err != nil {
		logrus.Error(err)
	}
	os.Exit(int(code))
}
