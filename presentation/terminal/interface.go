package terminal

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"kanban_e2e/application/scenario"
	"kanban_e2e/domain/entities"
	"kanban_e2e/infrastructure/browser"
	"kanban_e2e/infrastructure/config"
	"kanban_e2e/infrastructure/fixture"
	"kanban_e2e/infrastructure/storage"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"
	"github.com/savioxavier/termlink"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

type TerminalInterface struct {
	cfg    config.Config
	logger *logrus.Logger
	out    io.Writer
}

func NewTerminalInterface(out io.Writer, envFiles ...string) (*TerminalInterface, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logger
	logger := logrus.New()
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &TerminalInterface{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}, nil
}

// Command builds the kanban-e2e command tree. Flag defaults come from the loaded configuration.
func (t *TerminalInterface) Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kanban-e2e",
		Short:         "End-to-end checks for the kanban board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := t.cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			t.logger.SetLevel(t.cfg.Level())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&t.cfg.Browser, "browser", "b", t.cfg.Browser, "Browser engine: chromium, firefox or webkit")
	rootCmd.PersistentFlags().StringVar(&t.cfg.LogLevel, "log-level", t.cfg.LogLevel, "Log level")

	rootCmd.AddCommand(t.runCommand(), t.installCommand(), t.serveFixtureCommand())
	return rootCmd
}

// Execute runs the command tree until ctx is cancelled
func (t *TerminalInterface) Execute(ctx context.Context, args []string) error {
	cmd := t.Command()
	cmd.SetArgs(args)
	cmd.SetOut(t.out)
	return cmd.ExecuteContext(ctx)
}

func (t *TerminalInterface) runCommand() *cobra.Command {
	var useFixture bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the \"Edit a Kanban Card\" scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return t.runScenario(cmd.Context(), useFixture)
		},
	}
	cmd.Flags().StringVarP(&t.cfg.BaseURL, "base-url", "u", t.cfg.BaseURL, "Base URL of the kanban board")
	cmd.Flags().BoolVar(&t.cfg.Headless, "headless", t.cfg.Headless, "Run the browser without a window")
	cmd.Flags().DurationVar(&t.cfg.SlowMo, "slow-mo", t.cfg.SlowMo, "Delay between browser actions")
	cmd.Flags().DurationVarP(&t.cfg.LoadTimeout, "load-timeout", "t", t.cfg.LoadTimeout, "Max time to wait for the page load state")
	cmd.Flags().StringVar(&t.cfg.ReportDir, "report-dir", t.cfg.ReportDir, "Directory for run reports and screenshots")
	cmd.Flags().StringVar(&t.cfg.BoardPath, "board-path", t.cfg.BoardPath, "Path of the board relative to the base URL")
	cmd.Flags().BoolVar(&useFixture, "fixture", false, "Run against the built-in fixture board instead of --base-url")
	return cmd
}

func (t *TerminalInterface) installCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the playwright driver and the configured browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t.logger.WithField("browser", t.cfg.Browser).Info("installing playwright driver")
			err := playwright.Install(&playwright.RunOptions{
				Browsers: []string{t.cfg.Browser},
				Verbose:  true,
			})
			if err != nil {
				return fmt.Errorf("failed to install playwright: %w", err)
			}
			return nil
		},
	}
}

func (t *TerminalInterface) serveFixtureCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve-fixture",
		Short: "Serve the fixture kanban board until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := fixture.Start(addr, t.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(t.out, "Serving fixture board at %s\n", srv.URL())

			<-cmd.Context().Done()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:5173", "Listen address")
	return cmd
}

func (t *TerminalInterface) runScenario(ctx context.Context, useFixture bool) error {
	if useFixture {
		srv, err := fixture.Start("127.0.0.1:0", t.logger)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				t.logger.WithError(err).Warn("failed to stop fixture board")
			}
		}()
		t.cfg.BaseURL = srv.URL()
	}

	store, err := storage.NewReportStore(t.cfg.ReportDir)
	if err != nil {
		return err
	}

	session, err := browser.NewSession(t.cfg, t.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer session.Close()

	t.logger.WithFields(logrus.Fields{
		"base_url": t.cfg.BaseURL,
		"browser":  t.cfg.Browser,
	}).Info("starting scenario")

	report, runErr := scenario.EditKanbanCard(ctx, session,
		scenario.WithReporter(NewStepReporter(t.out)),
		scenario.WithLogger(t.logger),
		scenario.WithLoadTimeout(t.cfg.LoadTimeout),
		scenario.WithBoardPath(t.cfg.BoardPath),
	)

	reportPath, err := scenario.SaveArtifacts(report, session, store, t.cfg.ScreenshotOnFailure, t.logger)
	if err != nil {
		t.logger.WithError(err).Error("failed to save run report")
	}
	t.printSummary(report, reportPath)

	if runErr != nil {
		return errors.Wrapf(runErr, "scenario %q failed", report.Scenario)
	}
	return nil
}

func (t *TerminalInterface) printSummary(report *entities.RunReport, reportPath string) {
	byStatus := lo.GroupBy(report.Steps, func(step entities.StepResult) entities.StepStatus {
		return step.Status
	})

	fmt.Fprintf(t.out, "\n%s: %s (%d passed, %d failed, %d skipped) in %s\n",
		report.Scenario,
		report.Status,
		len(byStatus[entities.StepStatusPassed]),
		len(byStatus[entities.StepStatusFailed]),
		len(byStatus[entities.StepStatusSkipped]),
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond),
	)
	if reportPath != "" {
		fmt.Fprintf(t.out, "Report saved to %s\n", fileLink(reportPath))
	}
	if report.Screenshot != "" {
		fmt.Fprintf(t.out, "Screenshot saved to %s\n", fileLink(report.Screenshot))
	}
}

func fileLink(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return termlink.ColorLink(filepath.Base(path), fmt.Sprintf("file://%s", abs), "italic green")
}
