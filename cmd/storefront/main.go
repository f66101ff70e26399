package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ralphmarondev/varicacao/pkg/storefront/app"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/service"
	"github.com/ralphmarondev/varicacao/pkg/storefront/infrastructure/catalog"
	"github.com/ralphmarondev/varicacao/pkg/storefront/transport"
)

const appID = "storefront"

type config struct {
	Port         int    `envconfig:"PORT" default:"8080"`
	CatalogFile  string `envconfig:"CATALOG_FILE"`
	ShippingFlat string `envconfig:"SHIPPING_FLAT" default:"25.00"`
	TaxRate      string `envconfig:"TAX_RATE" default:"0.10"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cliApp := &cli.App{
		Name:  appID,
		Usage: "Varicacao Tech storefront: industrial machines and spare parts",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "HTTP listen port"},
			&cli.StringFlag{Name: "catalog-file", Usage: "path to a JSON catalog (built-in demo catalog when empty)"},
			&cli.StringFlag{Name: "shipping-flat", Usage: "flat shipping charge"},
			&cli.StringFlag{Name: "tax-rate", Usage: "tax rate as a fraction of the subtotal"},
		},
		Action: runServer,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("storefront terminated")
	}
}

func runServer(c *cli.Context) error {
	cfg, err := parseConfig(c)
	if err != nil {
		return err
	}

	source, err := catalogSource(cfg.CatalogFile)
	if err != nil {
		return err
	}

	totalsCfg, err := totalsConfig(cfg)
	if err != nil {
		return err
	}

	dispatcher := app.LogDispatcher{}
	catalogService := service.NewCatalogService(source)
	cartService := service.NewCartService(dispatcher)
	session := app.NewSession(catalogService, cartService, totalsCfg, app.LogProcessor{}, dispatcher)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: transport.Router(session, catalogService),
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{"url": addr}).Info("Starting server")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func parseConfig(c *cli.Context) (*config, error) {
	cfg := new(config)
	if err := envconfig.Process(appID, cfg); err != nil {
		return nil, err
	}

	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("catalog-file") {
		cfg.CatalogFile = c.String("catalog-file")
	}
	if c.IsSet("shipping-flat") {
		cfg.ShippingFlat = c.String("shipping-flat")
	}
	if c.IsSet("tax-rate") {
		cfg.TaxRate = c.String("tax-rate")
	}
	return cfg, nil
}

func catalogSource(path string) (model.CatalogSource, error) {
	if path == "" {
		log.Info("No catalog file configured, using built-in demo catalog")
		return catalog.BuiltIn(), nil
	}

	source, err := catalog.NewFileSource(path)
	if err != nil {
		return nil, err
	}
	log.WithField("file", path).Info("Loaded catalog file")
	return source, nil
}

func totalsConfig(cfg *config) (service.TotalsConfig, error) {
	shipping, err := decimal.NewFromString(cfg.ShippingFlat)
	if err != nil {
		return service.TotalsConfig{}, fmt.Errorf("invalid shipping flat %q: %w", cfg.ShippingFlat, err)
	}
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return service.TotalsConfig{}, fmt.Errorf("invalid tax rate %q: %w", cfg.TaxRate, err)
	}
	return service.TotalsConfig{ShippingFlat: shipping, TaxRate: taxRate}, nil
}
