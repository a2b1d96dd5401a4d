package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/internal/config"
	"github.com/goliatone/go-formguard/internal/logging"
	"github.com/goliatone/go-formguard/pkg/metrics"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/signup"
	"github.com/goliatone/go-formguard/pkg/validation"
)

var envFiles []string

type appState struct {
	cfg       config.Config
	logger    *slog.Logger
	collector *metrics.Collector
	server    *http.Server
}

var app appState

var rootCmd = &cobra.Command{
	Use:   "formguard",
	Short: "Cross-field form validation from the terminal",
	Long: `formguard drives the signup form (email, password with confirmation,
country and a country-dependent postal code) and shows every validation
message as a user would see it, including messages of dependent fields.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, ".env files to load before reading the environment")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	collector, err := metrics.New(registry)
	if err != nil {
		return err
	}

	app = appState{cfg: cfg, logger: logger, collector: collector}
	if cfg.MetricsAddr == "" {
		return nil
	}

	ln, err := net.Listen("tcp", cfg.MetricsAddr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(registry))
	app.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if app.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	return app.server.Shutdown(ctx)
}

// newForm builds a signup form wired to the runtime's logger and metrics.
func newForm() (*signup.Form, error) {
	options := []signup.Option{
		signup.WithObserver(validation.Observers{
			validation.NewLogObserver(app.logger),
			app.collector,
		}),
	}
	if len(app.cfg.Regions) > 0 {
		formats, err := selectFormats(app.cfg.Regions)
		if err != nil {
			return nil, err
		}
		options = append(options, signup.WithPostalFormats(formats))
	}
	return signup.New(options...)
}

func selectFormats(regions []string) (rules.Formats, error) {
	out := make(rules.Formats, len(regions))
	for _, region := range regions {
		format, ok := rules.PostalFormats.Lookup(region)
		if !ok {
			return nil, fmt.Errorf("no postal format for region %q (known: %v)", region, rules.PostalFormats.Regions())
		}
		out[region] = format
	}
	return out, nil
}
