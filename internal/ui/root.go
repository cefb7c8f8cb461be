package ui

import (
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/episodik/episode-browser/internal/config"
	"github.com/episodik/episode-browser/internal/episodes"
	"github.com/episodik/episode-browser/internal/model"
	"github.com/episodik/episode-browser/internal/platform"
	"github.com/episodik/episode-browser/internal/telemetry"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	env          config.Env
	settings     *config.Settings
	localization *Localization
	episodesSvc  episodes.Fetcher
	reporter     telemetry.Reporter

	// View state. Owned by the UI thread; mutated only through loadPage and
	// applyUpdate.
	page        int
	status      model.FetchStatus
	current     *model.EpisodePage
	injectFault bool

	// UI components
	titleLabel  *widget.Label
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	pageLabel   *widget.Label
	loadingBox  *fyne.Container
	loadingText *widget.Label
	errorLabel  *widget.Label
	retryBtn    *widget.Button
	errorBox    *fyne.Container
	boundary    *Boundary
	centerStack *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, env config.Env, episodesSvc episodes.Fetcher, reporter telemetry.Reporter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		env:          env,
		settings:     settings,
		localization: localization,
		episodesSvc:  episodesSvc,
		reporter:     reporter,
		status:       model.StatusLoading,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Fetch results arrive from service goroutines
	ui.episodesSvc.SetUpdateCallback(ui.onEpisodesUpdate)

	ui.setupUI()
	ui.loadPage(settings.GetLastPage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create header
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, ui.titleLabel, settingsBtn)

	// Create loading state
	ui.loadingText = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.loadingText.Alignment = fyne.TextAlignCenter
	ui.loadingBox = container.NewCenter(container.NewVBox(
		widget.NewProgressBarInfinite(),
		ui.loadingText,
	))

	// Create fetch-error state. Fetch errors are plain UI state, fully
	// separate from the render boundary's fault state.
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Wrapping = fyne.TextWrapWord

	ui.retryBtn = widget.NewButton(IconRetry+" "+ui.localization.GetText(KeyRetry), ui.onRetry)
	ui.retryBtn.Importance = widget.HighImportance

	errorTitle := widget.NewLabel(IconError + " " + ui.localization.GetText(KeyFetchFailed))
	errorTitle.Alignment = fyne.TextAlignCenter
	errorTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.errorBox = container.NewCenter(container.NewVBox(
		errorTitle,
		ui.errorLabel,
		container.NewCenter(ui.retryBtn),
	))

	// Create populated state: the card grid, guarded by the boundary
	ui.boundary = NewBoundary(ui.reporter, ui.localization, ui.buildEpisodeGrid)

	ui.centerStack = container.NewStack(ui.loadingBox, ui.errorBox, ui.boundary)

	// Create pagination bar
	ui.prevBtn = widget.NewButton(IconPrev+" "+ui.localization.GetText(KeyPrevious), ui.onPrevPage)
	ui.nextBtn = widget.NewButton(ui.localization.GetText(KeyNext)+" "+IconNext, ui.onNextPage)
	ui.prevBtn.Disable()
	ui.nextBtn.Disable()

	ui.pageLabel = widget.NewLabel("")
	ui.pageLabel.Alignment = fyne.TextAlignCenter

	pagination := container.NewBorder(nil, nil, ui.prevBtn, ui.nextBtn, ui.pageLabel)

	// Create main layout
	content := container.NewBorder(
		topPanel,   // top
		pagination, // bottom
		nil,        // left
		nil,        // right
		ui.centerStack,
	)

	ui.window.SetContent(content)
	ui.applyStatus()

	slog.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Help menu
	docsItem := fyne.NewMenuItem(ui.localization.GetText(KeyAPIDocs), ui.onOpenAPIDocs)
	helpMenu := fyne.NewMenu(ui.localization.GetText(KeyHelp), docsItem)

	menus := []*fyne.Menu{
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
		helpMenu,
	}

	// Fault injection is a developer-only control
	if ui.env.Debug {
		injectItem := fyne.NewMenuItem(ui.localization.GetText(KeyInjectFault), ui.onToggleFaultInjection)
		injectItem.Checked = ui.injectFault
		menus = append(menus, fyne.NewMenu("Debug", injectItem))
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(menus...))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.loadingText.SetText(ui.localization.GetText(KeyLoading))
	ui.retryBtn.SetText(IconRetry + " " + ui.localization.GetText(KeyRetry))
	ui.prevBtn.SetText(IconPrev + " " + ui.localization.GetText(KeyPrevious))
	ui.nextBtn.SetText(ui.localization.GetText(KeyNext) + " " + IconNext)

	ui.updatePageLabel()

	// Regenerates fallback texts too; a faulted boundary stays faulted
	ui.boundary.Refresh()
}

// loadPage switches to the given page and requests it from the service
func (ui *RootUI) loadPage(page int) {
	slog.Info("Loading episode page", "page", page)

	ui.page = page
	ui.status = model.StatusLoading
	ui.applyStatus()
	ui.updatePageLabel()

	ui.episodesSvc.Load(page)
}

// onEpisodesUpdate handles fetch results from the episode service
func (ui *RootUI) onEpisodesUpdate(update episodes.Update) {
	// Delivered on a fetch goroutine; state changes happen on the UI thread
	fyne.Do(func() {
		ui.applyUpdate(update)
	})
}

// applyUpdate applies one fetch outcome to the view state
func (ui *RootUI) applyUpdate(update episodes.Update) {
	// The service enforces last-request-wins; this guards the short window
	// between a delivery and a page change on this side
	if update.Page != ui.page {
		slog.Debug("Ignoring update for inactive page", "page", update.Page, "current", ui.page)
		return
	}

	if update.Err != nil {
		ui.errorLabel.SetText(update.Err.Error())
		ui.status = model.StatusError
		ui.applyStatus()
		return
	}

	ui.current = update.Result
	ui.settings.SetLastPage(update.Page)

	ui.status = model.StatusReady
	ui.boundary.Refresh()
	ui.applyStatus()
	ui.updatePageLabel()

	slog.Debug("Episode page applied",
		"page", update.Page, "episodes", len(update.Result.Episodes), "cached", update.FromCache)
}

// applyStatus shows exactly one of the three mutually exclusive states and
// re-evaluates the pagination controls
func (ui *RootUI) applyStatus() {
	ui.loadingBox.Hide()
	ui.errorBox.Hide()
	ui.boundary.Hide()

	switch ui.status {
	case model.StatusLoading:
		ui.loadingBox.Show()
	case model.StatusError:
		ui.errorBox.Show()
	case model.StatusReady:
		ui.boundary.Show()
	}

	ui.updatePaginationControls()
}

// updatePaginationControls disables navigation at the page boundaries. While a
// fetch is in flight or has failed, ui.current still describes the previous
// page, so both controls stay disabled until the next Ready state.
func (ui *RootUI) updatePaginationControls() {
	if ui.current == nil || ui.status != model.StatusReady {
		ui.prevBtn.Disable()
		ui.nextBtn.Disable()
		return
	}

	if ui.current.Info.HasPrev() {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}

	if ui.current.Info.HasNext() {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}
}

// updatePageLabel renders the "Page N / M" indicator
func (ui *RootUI) updatePageLabel() {
	if ui.current == nil {
		ui.pageLabel.SetText(strconv.Itoa(ui.page))
		return
	}
	ui.pageLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyPageOf), ui.page, ui.current.Info.Pages))
}

// buildEpisodeGrid builds the guarded subtree: the card grid for the current
// page, plus the crash widget while fault injection is on
func (ui *RootUI) buildEpisodeGrid() fyne.CanvasObject {
	objects := []fyne.CanvasObject{}

	if ui.injectFault {
		objects = append(objects, NewCrashWidget())
	}

	if ui.current != nil {
		for _, episode := range ui.current.Episodes {
			objects = append(objects, NewEpisodeCard(episode))
		}
	}

	grid := container.NewGridWrap(fyne.NewSize(CardGridItemWidth, CardGridItemHeight), objects...)
	return container.NewVScroll(grid)
}

// onPrevPage handles the previous-page button
func (ui *RootUI) onPrevPage() {
	if ui.current == nil || !ui.current.Info.HasPrev() {
		return
	}
	ui.loadPage(*ui.current.Info.Prev)
}

// onNextPage handles the next-page button
func (ui *RootUI) onNextPage() {
	if ui.current == nil || !ui.current.Info.HasNext() {
		return
	}
	ui.loadPage(*ui.current.Info.Next)
}

// onRetry re-issues the fetch for the current page
func (ui *RootUI) onRetry() {
	ui.loadPage(ui.page)
}

// onToggleFaultInjection flips the crash widget in and out of the guarded grid
func (ui *RootUI) onToggleFaultInjection() {
	ui.injectFault = !ui.injectFault
	slog.Info("Fault injection toggled", "enabled", ui.injectFault)

	// Recreate menu to update the checkmark
	ui.createMenu()

	ui.boundary.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// onOpenAPIDocs opens the API documentation in the system browser
func (ui *RootUI) onOpenAPIDocs() {
	if err := platform.OpenURLInBrowser(APIDocsURL); err != nil {
		slog.Warn("Failed to open documentation", "error", err)
		widget.ShowPopUp(
			widget.NewLabel(ui.localization.GetText(KeyErrorOpeningDocs)+": "+err.Error()),
			ui.window.Canvas(),
		)
	}
}
