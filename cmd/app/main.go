package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/application/service"
	"github.com/TemirB/smm-orders/internal/catalog"
	"github.com/TemirB/smm-orders/internal/config"
	"github.com/TemirB/smm-orders/internal/domain"
	"github.com/TemirB/smm-orders/internal/observability"
	"github.com/TemirB/smm-orders/internal/panel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "app",
		Short: "Bulk order tool for social marketing panels",
		Long: `Places engagement orders (comments, shares, saves, likes) for one video
link on MoreThanPanel and JustAnotherPanel.

Without a subcommand the web form is served.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	serve := newServeCmd(&verbose)
	root.RunE = serve.RunE
	root.AddCommand(serve, newSubmitCmd(&verbose), newCatalogCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// app holds the components shared by the serve and submit commands.
type app struct {
	cfg     config.Config
	catalog *catalog.Catalog
	service *service.Service
	metrics *observability.Inmem
}

func newApp(logger *zap.Logger) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	for _, p := range cfg.MissingKeys() {
		logger.Warn("Panel has no API key, its orders will fail locally",
			zap.String("panel", p.Name()),
		)
	}

	creds := make(panel.Credentials, len(cfg.Panels))
	for p, c := range cfg.Panels {
		creds[p] = panel.Credential{URL: c.URL, Key: c.Key}
	}

	metrics := observability.NewInmem(1000)
	client := panel.NewClient(cfg.PanelTimeout, logger)

	return &app{
		cfg:     cfg,
		catalog: cat,
		service: service.NewService(cat, creds, client, logger, metrics),
		metrics: metrics,
	}, nil
}

func panelKeys() string {
	keys := make([]string, 0, len(domain.Panels))
	for _, p := range domain.Panels {
		keys = append(keys, string(p))
	}
	return strings.Join(keys, "|")
}
