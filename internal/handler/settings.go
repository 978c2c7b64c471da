package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wordlearner/internal/domain"
	"wordlearner/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// intervalChoices are the drill interval presets offered in settings, seconds.
var intervalChoices = []int{3, 5, 10, 30}

// handleSettings shows the settings card
func (h *Handler) handleSettings(c tele.Context) error {
	return h.showSettings(c, "")
}

// showSettings renders the settings card, prefixed with an optional notice
func (h *Handler) showSettings(c tele.Context, notice string) error {
	settings := h.settings.Get()

	text := settingsText(settings)
	if notice != "" {
		text = notice + "\n\n" + text
	}

	return h.reply(c, text, settingsMarkup())
}

// handleToggleMode flips between random and sequential display
func (h *Handler) handleToggleMode(c tele.Context) error {
	userID := c.Sender().ID

	mode := h.settings.Get().DisplayMode.Toggle()

	notice := ""
	if err := h.settings.SetMode(mode); err != nil {
		if !errors.Is(err, service.ErrNotSaved) {
			h.logger.Error("Failed to set display mode", zap.Error(err), zap.Int64("user_id", userID))
			return c.Respond(&tele.CallbackResponse{Text: "Could not switch the mode"})
		}
		h.logger.Warn("Mode change kept in memory only", zap.Error(err))
		notice = "⚠️ Applied, but writing the settings file failed."
	}

	if err := h.sequence.SetMode(mode); err != nil {
		h.logger.Error("Failed to apply display mode", zap.Error(err))
	}

	h.logger.Info("Display mode switched",
		zap.Int64("user_id", userID),
		zap.String("mode", string(mode)),
	)

	return h.showSettings(c, notice)
}

// handleToggleTranslation shows or hides translations on word cards
func (h *Handler) handleToggleTranslation(c tele.Context) error {
	userID := c.Sender().ID

	show, err := h.settings.ToggleTranslation()
	notice := ""
	if err != nil {
		if !errors.Is(err, service.ErrNotSaved) {
			h.logger.Error("Failed to toggle translation", zap.Error(err), zap.Int64("user_id", userID))
			return c.Respond(&tele.CallbackResponse{Text: "Could not toggle translations"})
		}
		h.logger.Warn("Translation toggle kept in memory only", zap.Error(err))
		notice = "⚠️ Applied, but writing the settings file failed."
	}

	h.logger.Info("Translation visibility toggled",
		zap.Int64("user_id", userID),
		zap.Bool("show", show),
	)

	return h.showSettings(c, notice)
}

// handleInterval applies an interval preset from the settings card
func (h *Handler) handleInterval(c tele.Context, data string) error {
	userID := c.Sender().ID

	data = strings.TrimSpace(data)
	secondsStr := strings.TrimPrefix(data, "interval_")
	seconds, err := strconv.Atoi(secondsStr)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Bad interval"})
	}

	notice := ""
	if err := h.settings.SetInterval(seconds); err != nil {
		if !errors.Is(err, service.ErrNotSaved) {
			h.logger.Error("Failed to set interval", zap.Error(err), zap.Int64("user_id", userID))
			return c.Respond(&tele.CallbackResponse{Text: "Could not set the interval"})
		}
		h.logger.Warn("Interval change kept in memory only", zap.Error(err))
		notice = "⚠️ Applied, but writing the settings file failed."
	}

	h.logger.Info("Drill interval changed",
		zap.Int64("user_id", userID),
		zap.Int("seconds", seconds),
	)

	// A running drill picks the new pace up right away
	h.restartDrillIfRunning()

	return h.showSettings(c, notice)
}

// settingsText renders the current settings as a card
func settingsText(s domain.Settings) string {
	mode := "🎲 random"
	if s.DisplayMode == domain.ModeSequential {
		mode = "📖 sequential"
	}

	translations := "shown"
	if !s.ShowTranslation {
		translations = "hidden"
	}

	return fmt.Sprintf(
		"⚙️ Settings\n\n⏱ Drill interval: %ds\n🔀 Display mode: %s\n👁 Translations: %s",
		s.DisplayInterval, mode, translations,
	)
}

// settingsMarkup returns the settings keyboard with interval presets
func settingsMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	intervalRow := tele.Row{}
	for _, seconds := range intervalChoices {
		intervalRow = append(intervalRow, markup.Data(
			fmt.Sprintf("%ds", seconds),
			fmt.Sprintf("interval_%d", seconds),
		))
	}

	markup.Inline(
		markup.Row(btnToggleMode),
		markup.Row(btnToggleTranslation),
		intervalRow,
		markup.Row(btnMainMenu),
	)
	return markup
}
