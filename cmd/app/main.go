package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/umeed/internal/breathing"
	"github.com/akyairhashvil/umeed/internal/companion"
	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/database"
	"github.com/akyairhashvil/umeed/internal/tui"
	"github.com/akyairhashvil/umeed/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Alas, there's been an error:", err)
		os.Exit(1)
	}
}

// app bundles what every command needs.
type app struct {
	settings config.Settings
	registry *breathing.Registry
	logger   *zap.Logger
}

func loadApp(defaultLog string) (*app, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	registry := breathing.DefaultRegistry()
	if settings.PresetsFile != "" {
		extra, err := config.LoadPresets(settings.PresetsFile)
		if err != nil {
			return nil, err
		}
		if registry, err = registry.With(extra...); err != nil {
			return nil, fmt.Errorf("presets file %s: %w", settings.PresetsFile, err)
		}
	}
	logPath := settings.LogFile
	if logPath == "" {
		logPath = defaultLog
	}
	logger, err := util.NewLogger(logPath, settings.LogLevel)
	if err != nil {
		return nil, err
	}
	return &app{settings: settings, registry: registry, logger: logger}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func (a *app) responder() companion.Responder {
	delay := config.CompanionDelay
	if a.settings.Offline {
		delay = config.OfflineDelay
	}
	return companion.Delayed{Next: companion.NewKeywordResponder(), Delay: delay}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal wellbeing companion",
		Long: `umeed offers guided breathing, a mood tracker, a journal,
a scripted support chat, counselor and peer mentor bookings
and PHQ-9 / GAD-7 self-screening.
Nothing is written to disk: every run starts from sample data.`,
		Version:       tui.AppVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
				return cmd.Help()
			}
			return runTUI(cmd.Context())
		},
	}
	root.SetOut(out)
	root.AddCommand(newPresetsCmd(), newRunCmd(), newScreenCmd(), newSupportCmd())
	return root
}

func runTUI(ctx context.Context) error {
	a, err := loadApp(filepath.Join(util.StateDir(config.AppName), config.LogFileName))
	if err != nil {
		return err
	}
	defer a.close()

	db, err := database.Open(ctx, database.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.SeedDemo(ctx); err != nil {
		return err
	}

	model, err := tui.NewMainModel(ctx, tui.Options{
		Repo:      db,
		Registry:  a.registry,
		Responder: a.responder(),
		Preset:    config.DefaultPreset,
		Offline:   a.settings.Offline,
		Theme:     tui.ThemeByName(a.settings.Theme),
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}
	a.logger.Info("starting tui", zap.String("theme", a.settings.Theme), zap.Bool("offline", a.settings.Offline))
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
