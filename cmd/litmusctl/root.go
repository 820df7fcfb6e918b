package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/saturnines/litmus-go/pkg/config"
	"github.com/saturnines/litmus-go/pkg/litmus"
)

// app holds global flags and the client built from them.
type app struct {
	configPath string
	envFile    string
	host       string
	token      string
	output     string
	verbose    bool

	out      io.Writer
	logger   *zap.Logger
	registry *prometheus.Registry
	client   *litmus.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "litmusctl",
		Short: "Command-line client for the chaos control plane",
		Long: `litmusctl talks to a chaos control plane over its REST (/auth) and
GraphQL (/api/query) APIs.

The host and token come from --host/--token, LITMUS_HOST/LITMUS_TOKEN
(optionally from a .env file), or a YAML config file.

Examples:
  litmusctl capabilities --host http://localhost:9091
  litmusctl project list --limit 5
  litmusctl hub list --project <projectID> -o yaml
  litmusctl infra manifest --project <projectID> <infraID> > agent.yaml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.StringVar(&a.host, "host", "", "control plane URL (overrides config and LITMUS_HOST)")
	flags.StringVar(&a.token, "token", "", "bearer token (overrides config and LITMUS_TOKEN)")
	flags.StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newCapabilitiesCmd(a),
		newUserCmd(a),
		newProjectCmd(a),
		newEnvCmd(a),
		newInfraCmd(a),
		newHubCmd(a),
	)
	return root
}

func (a *app) setup() error {
	if a.output != "json" && a.output != "yaml" {
		return fmt.Errorf("unknown output format %q", a.output)
	}

	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}

	loader := config.NewDefaultLoader().WithOverride(func(cfg *config.ClientConfig) {
		if a.host != "" {
			cfg.Host = a.host
		}
		if a.token != "" {
			cfg.Token = a.token
		}
	})
	cfg, err := loader.Load(a.configPath)
	if err != nil {
		return err
	}

	a.logger, err = buildLogger(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}

	opts := []litmus.Option{
		litmus.WithLogger(a.logger),
		litmus.WithTimeout(cfg.Timeout),
		litmus.WithUserAgent(cfg.UserAgent + "/" + version),
	}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		opts = append(opts, litmus.WithMetrics(a.registry))
	}

	a.client, err = litmus.New(cfg.Host, cfg.Token, opts...)
	return err
}

func (a *app) teardown() {
	if a.client != nil {
		_ = a.client.Close()
	}
	a.logMetrics()
	_ = a.logger.Sync()
}

// logMetrics reports request counters gathered during the command.
func (a *app) logMetrics() {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("metric", mf.GetName())}
			for _, l := range m.GetLabel() {
				fields = append(fields, zap.String(l.GetName(), l.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()),
				)
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			}
			a.logger.Debug("metric", fields...)
		}
	}
}

func buildLogger(level config.LogLevel, verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(string(level))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
