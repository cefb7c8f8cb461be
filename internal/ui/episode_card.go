package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/episodik/episode-browser/internal/model"
)

// EpisodeCard represents a compact episode card widget
type EpisodeCard struct {
	widget.BaseWidget

	episode model.Episode

	// UI components
	nameLabel     *widget.Label
	subtitleLabel *widget.Label
	idLabel       *widget.Label

	content *fyne.Container
}

// NewEpisodeCard creates a new episode card widget
func NewEpisodeCard(episode model.Episode) *EpisodeCard {
	card := &EpisodeCard{episode: episode}
	card.ExtendBaseWidget(card)
	card.createUI()
	card.updateFromEpisode()
	return card
}

// CreateRenderer implements fyne.Widget
func (ec *EpisodeCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ec.content)
}

// UpdateEpisode replaces the displayed episode
func (ec *EpisodeCard) UpdateEpisode(episode model.Episode) {
	ec.episode = episode
	ec.updateFromEpisode()
	ec.Refresh()
}

// createUI creates the card layout
func (ec *EpisodeCard) createUI() {
	ec.nameLabel = widget.NewLabel("")
	ec.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ec.nameLabel.Truncation = fyne.TextTruncateEllipsis

	ec.subtitleLabel = widget.NewLabel("")
	ec.subtitleLabel.Truncation = fyne.TextTruncateEllipsis

	ec.idLabel = widget.NewLabel("")
	ec.idLabel.Alignment = fyne.TextAlignTrailing

	header := container.NewBorder(nil, nil, nil, ec.idLabel, ec.nameLabel)
	rows := container.NewVBox(header, ec.subtitleLabel)
	ec.content = container.NewPadded(rows)
}

// updateFromEpisode fills the labels from the current episode
func (ec *EpisodeCard) updateFromEpisode() {
	ec.nameLabel.SetText(ec.episode.GetDisplayName())
	ec.subtitleLabel.SetText(ec.episode.GetSubtitle())
	ec.idLabel.SetText("#" + strconv.Itoa(ec.episode.ID))
}
