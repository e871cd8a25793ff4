package cli

import (
	"fmt"
	"strings"

	"visibilitystack-cli/internal/config"
	"visibilitystack-cli/internal/format"
	"visibilitystack-cli/internal/logging"
	"visibilitystack-cli/internal/nav"
	"visibilitystack-cli/internal/store"
	"visibilitystack-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	ConfigFile string
	PrettyJSON bool
	Format     string

	// runTUI is swapped in tests; the real one takes over the terminal.
	runTUI func(tui.Options) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{runTUI: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vstack",
		Short:        "VisibilityStack business context dashboard",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the dashboard
  vstack

  # Start on another screen with your own data
  vstack --screen citations --seed ./seed.yaml

  # Print the seed data
  vstack seed --format edn --pretty
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigFile, "config", "", "Config file (default: ./vstack.yaml or ~/.config/vstack/vstack.yaml)")
	pf.String("seed", "", "YAML file with the initial profile, ICPs and competitors")
	pf.String("screen", "", "Screen to open first ("+screenIDs()+")")
	pf.String("theme", "", "Color theme (auto|light|dark)")
	pf.String("debug-log", "", "Write debug logs to this file")
	pf.String("log-level", "", "Debug log level (debug|info|warn|error)")
	pf.StringVar(&app.Format, "format", "json", "Output format ("+strings.Join(format.Formats, "|")+")")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")

	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newScreensCmd(app))
	cmd.AddCommand(newDocsCmd())

	return cmd
}

// session is everything a dashboard run needs, built from config.
type session struct {
	opts tui.Options
	log  *zap.Logger
}

func loadSession(cmd *cobra.Command, app *App) (session, error) {
	cfg, err := config.Load(app.ConfigFile, cmd.Flags())
	if err != nil {
		return session{}, err
	}

	screen, err := nav.ParseScreen(cfg.Screen)
	if err != nil {
		return session{}, fmt.Errorf("--screen: %w", err)
	}
	ctl, err := nav.NewAt(screen)
	if err != nil {
		return session{}, err
	}

	seed, err := store.LoadSeedFile(cfg.SeedPath)
	if err != nil {
		return session{}, err
	}

	log, err := logging.New(cfg.DebugLog, cfg.LogLevel)
	if err != nil {
		return session{}, err
	}
	st, err := store.New(seed, store.WithLogger(log))
	if err != nil {
		_ = log.Sync()
		return session{}, fmt.Errorf("seed: %w", err)
	}

	log.Info("dashboard starting",
		zap.String("screen", string(screen)),
		zap.String("seed", emptyAsDefault(cfg.SeedPath)),
		zap.Int("icps", len(seed.ICPs)),
	)
	return session{
		opts: tui.Options{
			Nav:          ctl,
			Store:        st,
			AccountEmail: cfg.AccountEmail,
			Theme:        cfg.Theme,
			Logger:       log,
		},
		log: log,
	}, nil
}

func runDashboard(cmd *cobra.Command, app *App) error {
	s, err := loadSession(cmd, app)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	if err := app.runTUI(s.opts); err != nil {
		s.log.Error("dashboard exited", zap.Error(err))
		return err
	}
	s.log.Info("dashboard closed")
	return nil
}

func emptyAsDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(built-in)"
	}
	return s
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func screenIDs() string {
	var ids []string
	for _, s := range nav.Screens() {
		ids = append(ids, string(s))
	}
	return strings.Join(ids, "|")
}
