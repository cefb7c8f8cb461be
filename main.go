package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/lmittmann/tint"

	"github.com/episodik/episode-browser/internal/config"
	"github.com/episodik/episode-browser/internal/episodes"
	"github.com/episodik/episode-browser/internal/telemetry"
	"github.com/episodik/episode-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.episodik.episode-browser"
	AppName = "Episode Browser"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	// Load environment configuration before setting up the logger
	env := config.LoadEnv()

	level := slog.LevelInfo
	if env.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})))

	slog.Info("Episode Browser starting", "version", version, "debug", env.Debug)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	reporter := telemetry.NewReporter(env.TelemetryDSN, settings.GetTelemetryEnabled(), env.Debug)

	client := episodes.NewClient(episodes.DefaultEndpoint)
	episodesSvc := episodes.NewService(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, env, episodesSvc, reporter)

	// Show and run
	myWindow.ShowAndRun()

	// Window closed: stop in-flight work and drain buffered reports
	episodesSvc.Cancel()
	reporter.Flush(telemetry.DefaultFlushTimeout)
}
