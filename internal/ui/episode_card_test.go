package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/episodik/episode-browser/internal/model"
)

func TestNewEpisodeCard(t *testing.T) {
	test.NewApp()

	episode := model.Episode{ID: 1, Name: "Pilot", AirDate: "December 2, 2013", Code: "S01E01"}
	card := NewEpisodeCard(episode)

	if card.nameLabel.Text != "Pilot" {
		t.Errorf("Expected name 'Pilot', got '%s'", card.nameLabel.Text)
	}

	if card.subtitleLabel.Text != "S01E01 · December 2, 2013" {
		t.Errorf("Unexpected subtitle: '%s'", card.subtitleLabel.Text)
	}

	if card.idLabel.Text != "#1" {
		t.Errorf("Expected id label '#1', got '%s'", card.idLabel.Text)
	}
}

func TestEpisodeCard_UpdateEpisode(t *testing.T) {
	test.NewApp()

	card := NewEpisodeCard(model.Episode{ID: 1, Name: "Pilot", Code: "S01E01"})

	card.UpdateEpisode(model.Episode{ID: 28, Name: "The Ricklantis Mixup", AirDate: "September 10, 2017", Code: "S03E07"})

	if card.nameLabel.Text != "The Ricklantis Mixup" {
		t.Errorf("Expected updated name, got '%s'", card.nameLabel.Text)
	}

	if card.idLabel.Text != "#28" {
		t.Errorf("Expected updated id label '#28', got '%s'", card.idLabel.Text)
	}
}

func TestEpisodeCard_FallsBackToCode(t *testing.T) {
	test.NewApp()

	card := NewEpisodeCard(model.Episode{ID: 2, Name: "", Code: "S01E02"})

	if card.nameLabel.Text != "S01E02" {
		t.Errorf("Expected code fallback 'S01E02', got '%s'", card.nameLabel.Text)
	}
}
