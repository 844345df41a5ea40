package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"

	"github.com/papyra/papyra/config"
	"github.com/papyra/papyra/pkg/otel"
	"github.com/papyra/papyra/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version string = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration path")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "papyra", version); err != nil {
		panic(err)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	h, err := api.New(cfg)

	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Route("/v1", h.Attach)

	server := &http.Server{
		Addr: cfg.Address,

		Handler: otelhttp.NewHandler(r, "server"),
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
