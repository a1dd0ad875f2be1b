package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"

	"github.com/stigoleg/nosleep/internal/app"
	"github.com/stigoleg/nosleep/internal/config"
	"github.com/stigoleg/nosleep/internal/hotkey"
	"github.com/stigoleg/nosleep/internal/platform"
	"github.com/stigoleg/nosleep/internal/ui"
)

const appVersion = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return app.ExitOK
	}
	if err != nil {
		ui.NewPrinter(os.Stderr).Error(err)
		return app.ExitInvalidInput
	}
	if cfg.ShowVersion {
		fmt.Printf("nosleep version %s\n", appVersion)
		return app.ExitOK
	}

	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "nosleep")
		if err != nil {
			ui.NewPrinter(os.Stderr).Error(err)
			return app.ExitInvalidInput
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, interruptSignals()...)
	defer signal.Stop(sigChan)

	interactive := !cfg.Plain &&
		isatty.IsTerminal(os.Stdout.Fd()) &&
		isatty.IsTerminal(os.Stdin.Fd())

	log.Printf("main: starting nosleep %s (interactive=%v)", appVersion, interactive)

	return app.Run(cfg, app.Deps{
		Controller:  platform.NewExecutionState(cfg.PowerFlags),
		KillSwitch:  hotkey.NewListener(cfg.KillSwitch),
		Clock:       clockwork.NewRealClock(),
		Signals:     sigChan,
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: interactive,
	})
}
