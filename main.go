package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/erralert/internal/app"
	"github.com/llehouerou/erralert/internal/config"
	"github.com/llehouerou/erralert/internal/errmsg"
	"github.com/llehouerou/erralert/internal/errreport"
	"github.com/llehouerou/erralert/internal/logging"
	"github.com/llehouerou/erralert/internal/notify"
	"github.com/llehouerou/erralert/internal/ui/erroralert"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Startup failures are kept and shown in the alert once the UI is up.
	var startupErrs []error

	cfg, err := config.Load()
	if err != nil {
		startupErrs = append(startupErrs, errmsg.Wrap(errmsg.OpConfigLoad, err))
		cfg = &config.Config{}
	}

	logger, logCloser, err := logging.New(cfg.GetLogConfig())
	if err != nil {
		startupErrs = append(startupErrs, errmsg.Wrap(errmsg.OpLogSetup, err))
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}
	slog.SetDefault(logger)

	reporter := errreport.New(errreport.WithLogger(logger))
	defer reporter.Close()

	if cfg.Notify.Enabled {
		notifier, err := notify.New("erralert")
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			mirror := notify.NewMirror(reporter, notifier, logger)
			defer mirror.Close()
		}
	}

	content := app.New(reporter, app.Options{
		FeedURL:    cfg.FeedURL(),
		FetchDelay: cfg.FetchDelay(),
	})
	root := erroralert.New(content, reporter)
	defer root.Close()

	for _, err := range startupErrs {
		logger.Error("startup", "error", err)
		reporter.Report(err)
	}

	logger.Info("starting")
	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}
	logger.Info("exiting")
	return nil
}
