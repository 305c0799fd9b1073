package main

import (
	"errors"
	"fmt"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pourpath/internal/config"
	"github.com/katalvlaran/pourpath/internal/logging"
	"github.com/katalvlaran/pourpath/level"
	"github.com/katalvlaran/pourpath/metrics"
	"github.com/katalvlaran/pourpath/solver"
	"github.com/katalvlaran/pourpath/state"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	configFile string
	v          *viper.Viper
	cfg        *config.Config
	logger     *slog.Logger
	registry   *prom.Registry
	recorder   metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "pourpath",
		Short: "Pourpath solves liquid-sort puzzles",
		Long: `Pourpath solves liquid-sort puzzles by breadth-first search over tube
configurations, printing the shortest sequence of pours that leaves every
tube full of one color or empty.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.init,
		PersistentPostRunE: a.close,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./pourpath.yaml)")
	pf.Int("workers", 1, "goroutines expanding each BFS layer")
	pf.Int("max-states", 0, "abort after this many configurations (0: no limit)")
	pf.Int("max-depth", 0, "do not expand beyond this many moves (0: no limit)")
	pf.Bool("stop-at-solution", false, "stop as soon as the sorted configuration is reached")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "text", "text or json")
	pf.String("cache", "", "SQLite file caching solved levels")
	pf.String("metrics-file", "", "write Prometheus metrics to this textfile")
	pf.String("levels", "", "YAML level pack (default: builtin levels)")

	root.AddCommand(newSolveCmd(a), newGraphCmd(a), newLevelsCmd(a), newVersionCmd())

	return root
}

// init loads configuration and builds the logger and metrics recorder.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.configFile, ".")
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	a.recorder = metrics.Nop{}
	if cfg.MetricsFile != "" {
		a.registry = prom.NewRegistry()
		p, err := metrics.NewPrometheus(a.registry)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		a.recorder = p
	}

	return nil
}

// close flushes metrics to the textfile when one is configured.
func (a *app) close(cmd *cobra.Command, _ []string) error {
	if a.cfg == nil || a.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))

	return nil
}

// pack returns the configured level pack or the builtin one.
func (a *app) pack() (*level.Pack, error) {
	if a.cfg.Levels == "" {
		return level.Builtin(), nil
	}

	return level.LoadFile(a.cfg.Levels)
}

// initial resolves the puzzle from --tubes or a level name.
func (a *app) initial(tubes string, args []string) (*state.State, string, error) {
	if tubes != "" {
		s, err := level.Parse(tubes)
		return s, "", err
	}
	if len(args) == 0 {
		return nil, "", errors.New("name a level or pass --tubes")
	}
	p, err := a.pack()
	if err != nil {
		return nil, "", err
	}
	l, err := p.Get(args[0])
	if err != nil {
		return nil, "", err
	}
	s, err := l.State()

	return s, l.Name, err
}

// solverOptions maps the configuration onto solver options.
func (a *app) solverOptions(cmd *cobra.Command) []solver.Option {
	opts := []solver.Option{
		solver.WithContext(cmd.Context()),
		solver.WithWorkers(a.cfg.Workers),
		solver.WithMaxStates(a.cfg.MaxStates),
		solver.WithMaxDepth(a.cfg.MaxDepth),
		solver.WithLogger(a.logger),
		solver.WithRecorder(a.recorder),
	}
	if a.cfg.StopAtSolution {
		opts = append(opts, solver.WithStopAtSolution())
	}

	return opts
}
