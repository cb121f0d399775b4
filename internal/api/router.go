package api

import (
	"fmt"
	"net/http"

	_ "github.com/rohits-web03/filedock/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rohits-web03/filedock/internal/api/handlers"
	"github.com/rohits-web03/filedock/internal/api/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func SetupRouter(files *handlers.FileHandler, corsOptions cors.Options) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(corsOptions)

	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)
	mainMux.Handle("GET /metrics", promhttp.Handler())

	mainMux.Handle("POST /api/upload",
		middleware.Metrics("/api/upload", http.HandlerFunc(files.UploadFile)),
	)

	log.Debug().Msg("router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
