// seed_catalog importa un catálogo de productos (CSV ';' exportado de Excel, UTF-8 o Windows-1252).
//
// Uso:
//
//	go run ./cmd/seed_catalog -in catalogo.csv [-out seed.sql]
//	go run ./cmd/seed_catalog -in catalogo.csv -post -user admin -pass admin
//
// Sin -post escribe INSERTs para la tabla products (stdout si no hay -out).
// Con -post crea cada producto contra el backend configurado en API_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/apiclient"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/catalog"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
	"github.com/jhoicas/panel-minorista/pkg/config"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

func main() {
	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	in := flag.String("in", "catalogo.csv", "archivo CSV de entrada")
	out := flag.String("out", "", "archivo SQL de salida (por defecto stdout)")
	post := flag.Bool("post", false, "crear los productos vía API en vez de generar SQL")
	user := flag.String("user", "admin", "usuario para -post")
	pass := flag.String("pass", "admin", "contraseña para -post")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	products, rowErrs, err := catalog.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	for _, re := range rowErrs {
		log.Warn().Int("line", re.Line).Err(re.Err).Msg("fila descartada")
	}

	if *post {
		created, err := postProducts(context.Background(), cfg, log, *user, *pass, products)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Importar vía API: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Creados %d de %d productos (%d filas descartadas)\n", created, len(products), len(rowErrs))
		return
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		of, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer of.Close()
		w = of
	}
	if err := catalog.WriteSQL(w, products, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		fmt.Printf("Generado %s: %d productos (%d filas descartadas)\n", *out, len(products), len(rowErrs))
	}
}

// postProducts inicia sesión contra el backend y crea los productos uno a uno.
func postProducts(ctx context.Context, cfg *config.Config, log *logger.Logger, user, pass string, products []dto.ProductInput) (int, error) {
	kv := memory.NewKeyValueStore()
	client := apiclient.NewClient(apiclient.Config{
		BaseURL:    cfg.API.BaseURL,
		RemoteAuth: true,
		Timeout:    cfg.API.HTTPTimeout,
	}, kv, log)

	res, err := client.Login(ctx, user, pass)
	if err != nil {
		return 0, err
	}
	if err := kv.Set(ctx, repository.KeyToken, res.Data.Token); err != nil {
		return 0, err
	}

	created := 0
	for _, p := range products {
		if _, err := client.CreateProduct(ctx, p); err != nil {
			log.Error().Err(err).Str("product", p.Name).Msg("no se pudo crear")
			continue
		}
		created++
	}
	return created, nil
}
