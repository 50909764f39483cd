package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/cbodonnell/tictaccube/client/audio"
	"github.com/cbodonnell/tictaccube/client/game"
	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/messaging"
	"github.com/cbodonnell/tictaccube/pkg/verify"
	"github.com/cbodonnell/tictaccube/pkg/version"
	"github.com/cbodonnell/tictaccube/pkg/workers"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logLevel := flag.String("log-level", envOr("TICTACCUBE_LOG_LEVEL", "info"), "Log level")
	debug := flag.Bool("debug", os.Getenv("TICTACCUBE_DEBUG") == "true", "Show the debug overlay")
	proxyURL := flag.String("proxy-url", os.Getenv("TICTACCUBE_PROXY_URL"), "URL of the messaging proxy, verification is skipped when empty")
	bot := flag.String("bot", envOr("TICTACCUBE_BOT", "tictaccube_bot"), "Username of the bot players start")
	backgroundPath := flag.String("background", os.Getenv("TICTACCUBE_BACKGROUND"), "Background image")
	musicPath := flag.String("music", os.Getenv("TICTACCUBE_MUSIC"), "Background music (MP3)")
	seed := flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if *seed == 0 {
		if s, err := strconv.ParseInt(os.Getenv("TICTACCUBE_SEED"), 10, 64); err == nil {
			*seed = s
		} else {
			*seed = time.Now().UnixNano()
		}
	}
	log.Debug("Random seed %d", *seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameOpts := game.NewGameOptions{
		Debug: *debug,
		Rand:  rand.New(rand.NewSource(*seed)),
		Bot:   *bot,
	}

	if *proxyURL != "" {
		client := messaging.NewClient(messaging.NewClientOptions{
			BaseURL: *proxyURL,
		})
		notificationChan := make(chan workers.Notification, 16)
		notifyWorker := workers.NewNotifyWorker(workers.NewNotifyWorkerOptions{
			Sender:           client,
			NotificationChan: notificationChan,
		})
		go notifyWorker.Start(ctx)

		var checker verify.Checker = client
		gameOpts.Checker = checker
		gameOpts.Notifier = messaging.NewNotifier(messaging.NewNotifierOptions{
			Out: notificationChan,
		})
		log.Info("Using messaging proxy at %s", *proxyURL)
	} else {
		log.Warn("No messaging proxy configured, players will not be verified")
	}

	if *backgroundPath != "" {
		img, _, err := ebitenutil.NewImageFromFile(*backgroundPath)
		if err != nil {
			log.Error("Failed to load background %s: %v", *backgroundPath, err)
		} else {
			gameOpts.Background = img
		}
	}

	player, err := audio.NewPlayer(audio.NewPlayerOptions{
		MusicPath: *musicPath,
	})
	if err != nil {
		log.Error("Failed to create audio player: %v", err)
	} else {
		gameOpts.Audio = player
	}

	g, err := game.NewGame(gameOpts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(constants.ScreenWidth, constants.ScreenHeight)
	ebiten.SetWindowTitle("Tic Tac Cube")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
