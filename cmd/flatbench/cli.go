package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/amp-labs/amp-flat/bench"
	"github.com/amp-labs/amp-flat/build"
	"github.com/amp-labs/amp-flat/logger"
	"github.com/amp-labs/amp-flat/shutdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var errUnknownFormat = errors.New("unknown output format")

const metricsShutdownTimeout = 5 * time.Second

// NewCLI builds the flatbench command tree. Shutdown hooks (such as stopping
// the metrics server) are registered on handler.
func NewCLI(handler *shutdown.Handler) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flatbench",
		Short: "Exercise flat containers across backing strategies",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SilenceUsage = true

			logger.ConfigureLogging(cmd.Context(), "flatbench", logger.WithOutput(cmd.ErrOrStderr()))
		},
	}

	rootCmd.AddCommand(newRunCmd(handler), newVersionCmd())

	return rootCmd
}

func newRunCmd(handler *shutdown.Handler) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured workloads",
		Long: "Run the workloads from --config (or FLATBENCH_CONFIG, or the built-in matrix),\n" +
			"print one row per workload and cross-check strategies that must agree.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHandler(cmd, handler)
		},
	}

	runCmd.Flags().StringP("config", "c", "", "Workload file (YAML)")
	runCmd.Flags().IntP("workers", "w", 0, "Concurrent workloads (default from config or FLATBENCH_WORKERS)")
	runCmd.Flags().StringP("format", "f", "table", "Output format: table or json")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	runCmd.Flags().Bool("cross-check", true, "Fail if strategies disagree on a workload's outcome")

	return runCmd
}

func runHandler(cmd *cobra.Command, handler *shutdown.Handler) error {
	ctx := cmd.Context()

	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")
	crossCheck, _ := cmd.Flags().GetBool("cross-check")

	if format != "table" && format != "json" {
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	cfg, err := bench.LoadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}

	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	if cfg.MetricsAddr != "" {
		if err := serveMetrics(ctx, cfg.MetricsAddr, reg, handler); err != nil {
			return err
		}
	}

	runner := bench.NewRunner(cfg.Workers, bench.NewMetrics(reg), logger.Get(ctx))

	results, runErr := runner.Run(ctx, cfg.Workloads)

	if err := writeResults(cmd.OutOrStdout(), format, results); err != nil {
		return err
	}

	totals := runner.Totals()
	logger.Get(ctx).Info("run finished",
		"workloads", totals.Workloads, "ops", totals.Ops, "failures", totals.Failures)

	if runErr != nil {
		return runErr
	}

	if crossCheck {
		return bench.CrossCheck(results)
	}

	return nil
}

func writeResults(w io.Writer, format string, results []bench.Result) error {
	if format == "json" {
		return bench.WriteJSON(w, results)
	}

	bench.WriteTable(w, results)

	return nil
}

// serveMetrics listens on addr right away, so a bad address fails the run,
// and serves until shutdown.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, handler *shutdown.Handler) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	server := &http.Server{Handler: mux, ReadHeaderTimeout: time.Second}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get(ctx).Error("metrics server stopped", "error", err)
		}
	}()

	logger.Get(ctx).Info("serving metrics", "addr", listener.Addr().String())

	handler.BeforeShutdown(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx) //nolint:contextcheck
	})

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := build.Current()
			out := cmd.OutOrStdout()

			_, err := fmt.Fprintf(out, "flatbench %s (%s, commit %s)\n", info.Version, info.GoVersion, info.GitCommit)
			if err != nil {
				return err
			}

			for _, name := range info.DependencyNames() {
				if _, err := fmt.Fprintf(out, "  %s %s\n", name, info.Dependencies[name]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
