package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cbodonnell/tictaccube/pkg/api"
	"github.com/cbodonnell/tictaccube/pkg/config"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/version"
)

func main() {
	configPath := flag.String("config", os.Getenv("TICTACCUBE_CONFIG"), "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadProxyConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.BotToken, cfg.APIEndpoint)
	if err != nil {
		panic(fmt.Sprintf("Failed to create bot client: %v", err))
	}
	log.Info("Authorized as @%s", bot.Self.UserName)

	apiServerOpts := api.NewAPIServerOptions{
		Port:        cfg.Port,
		AllowOrigin: cfg.AllowOrigin,
		Bot:         bot,
	}
	tlsCertFile := os.Getenv("TICTACCUBE_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("TICTACCUBE_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
