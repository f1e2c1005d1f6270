// panel es el front end de terminal: sesión, inventario, ventas, compras y reportes
// sobre el cliente de API simulado.
//
// La sesión (token) y el tema se guardan en el almacenamiento clave-valor; con
// STORAGE_DRIVER=memory el CLI usa SQLite (SQLITE_PATH) para que la sesión sobreviva
// entre ejecuciones.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/analytics"
	"github.com/jhoicas/panel-minorista/internal/application/auth"
	"github.com/jhoicas/panel-minorista/internal/application/inventory"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/application/store"
	"github.com/jhoicas/panel-minorista/internal/application/theme"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/apiclient"
	infrapdf "github.com/jhoicas/panel-minorista/internal/infrastructure/pdf"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/storage"
	"github.com/jhoicas/panel-minorista/pkg/config"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

func main() {
	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storageCfg := cfg.Storage
	if storageCfg.Driver == "memory" {
		storageCfg.Driver = "sqlite"
	}
	kv, closeKV, err := storage.OpenKeyValueStore(ctx, storageCfg, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", storageCfg.Driver).Msg("abrir almacenamiento")
	}

	client := apiclient.NewClient(apiclient.Config{
		BaseURL:       cfg.API.BaseURL,
		LoginDelay:    cfg.API.LoginDelay,
		FetchDelay:    cfg.API.FetchDelay,
		RemoteAuth:    cfg.API.RemoteAuth,
		Timeout:       cfg.API.HTTPTimeout,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
	}, kv, log)

	p := newPanel(client, kv, log)
	p.session.Init(ctx)
	defer p.session.Close()

	err = p.run(auth.WithSession(ctx, p.session), os.Args[1:])
	closeKV()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newPanel arma sesión, stores y casos de uso sobre el mismo cliente y almacenamiento.
func newPanel(client ports.APIClient, kv repository.KeyValueStore, log *logger.Logger) *panel {
	dashboard := analytics.NewDashboardUseCase(client)
	return &panel{
		session:   auth.NewSession(client, kv, log),
		products:  store.NewProductStore(client, log),
		sales:     store.NewSaleStore(client, log),
		purchases: store.NewPurchaseStore(client, log),
		dashboard: dashboard,
		report:    analytics.NewReportUseCase(dashboard, infrapdf.NewMarotoPDFGenerator()),
		replenish: inventory.NewReplenishmentUseCase(client),
		theme:     theme.NewService(kv),
		out:       os.Stdout,
		now:       time.Now,
	}
}
