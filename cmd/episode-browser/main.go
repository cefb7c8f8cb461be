package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/episodik/episode-browser/internal/config"
	"github.com/episodik/episode-browser/internal/episodes"
	"github.com/episodik/episode-browser/internal/telemetry"
	"github.com/episodik/episode-browser/internal/ui"
)

func main() {
	env := config.LoadEnv()

	// Create new Fyne app
	myApp := app.NewWithID("com.episodik.episode-browser")
	myWindow := myApp.NewWindow("Episode Browser")
	myWindow.Resize(fyne.NewSize(900, 640))

	settings := config.NewSettings(myApp)
	reporter := telemetry.NewReporter(env.TelemetryDSN, settings.GetTelemetryEnabled(), env.Debug)
	episodesSvc := episodes.NewService(episodes.NewClient(episodes.DefaultEndpoint))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, env, episodesSvc, reporter)

	// Show and run
	myWindow.ShowAndRun()
}
