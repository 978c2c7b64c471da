package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /help commands and shows the main menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened main menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)

	text := fmt.Sprintf(
		"🏠 Main menu\n\n%d words in your collection.\n\n"+
			"Send any word to add it, or pick an action:",
		h.words.Count(),
	)

	return h.reply(c, text, mainMenuMarkup())
}

// handleHistory shows the words already presented this session
func (h *Handler) handleHistory(c tele.Context) error {
	userID := c.Sender().ID

	entries := h.sequence.History()
	if len(entries) == 0 {
		return h.reply(c, "🕘 Nothing has been shown yet. Try /next or /drill.", mainMenuMarkup())
	}

	info := h.sequence.HistoryInfo()
	showTranslation := h.settings.Get().ShowTranslation

	// Show the most recent entries, oldest first.
	const historyPageSize = 15
	start := 0
	if len(entries) > historyPageSize {
		start = len(entries) - historyPageSize
	}

	text := fmt.Sprintf("🕘 History: %d shown, %d unique, position %d/%d\n\n",
		info.Total, info.UniqueWords, info.Position, info.Total)
	for i := start; i < len(entries); i++ {
		word := entries[i]
		if showTranslation && word.Translation != "" {
			text += fmt.Sprintf("%d. %s — %s\n", i+1, word.Word, word.Translation)
		} else {
			text += fmt.Sprintf("%d. %s\n", i+1, word.Word)
		}
	}

	if !h.sequence.AtHistoryEnd() {
		text += "\nYou stepped back. /next moves forward through the history first."
	}

	h.logger.Debug("History requested", zap.Int64("user_id", userID), zap.Int("entries", len(entries)))

	return h.reply(c, text, mainMenuMarkup())
}

// reply edits the message on a callback and sends a new one otherwise
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
