package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"

	"github.com/cbodonnell/tictaccube/pkg/api/handlers"
	"github.com/cbodonnell/tictaccube/pkg/api/middleware"
	"github.com/cbodonnell/tictaccube/pkg/log"
)

// APIServer is the messaging proxy. It lets a client that cannot hold the bot
// token send messages and check session confirmations.
type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port int
	TLS  *TLSConfig
	// AllowOrigin is the value of Access-Control-Allow-Origin. Defaults to "*".
	AllowOrigin string
	Bot         handlers.BotAPI
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewHandler(opts.Bot, opts.AllowOrigin),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewHandler builds the routes of the proxy. Responses are gzip compressed for
// clients that accept it.
func NewHandler(bot handlers.BotAPI, allowOrigin string) http.Handler {
	cors := middleware.NewCORSMiddleware(allowOrigin)

	router := mux.NewRouter()
	router.Use(middleware.NewLoggingMiddleware(), cors)
	router.HandleFunc("/send", handlers.HandleSend(bot)).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/check", handlers.HandleCheck(bot)).Methods(http.MethodGet, http.MethodOptions)
	router.NotFoundHandler = cors(handlers.HandleNotFound())
	router.MethodNotAllowedHandler = cors(handlers.HandleMethodNotAllowed())

	return gzhttp.GzipHandler(router)
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
