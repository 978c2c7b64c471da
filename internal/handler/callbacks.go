package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"wordlearner/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const listPageSize = 10

// cleanCallbackData strips whitespace and non-printable characters from callback payloads
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(data))
}

// handleEditError deals with c.Edit() failures. "message is not modified" means
// another callback already redrew this message, so it is acknowledged and dropped.
// Any other error is returned so the caller can send a fresh message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging callback",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, falling back to a new one",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Acknowledge the callback before the caller sends anything
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback dispatches every callback query
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: no callback in context")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Fixed buttons match by Unique
	if handler, ok := h.staticCallback(callback.Unique); ok {
		return handler(c)
	}

	// Some clients deliver the payload with an empty Unique, match by Data then
	if callback.Unique == "" {
		if handler, ok := h.staticCallback(data); ok {
			return handler(c)
		}
	}

	// Dynamic buttons carry their argument after a prefix
	switch {
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "confirmdel_"):
		return h.handleConfirmDelete(c, data)
	case strings.HasPrefix(data, "interval_"):
		return h.handleInterval(c, data)
	case strings.HasPrefix(data, "explain_"),
		strings.HasPrefix(data, "tips_"),
		strings.HasPrefix(data, "examples_"),
		strings.HasPrefix(data, "quiz_"):
		return h.handleAssist(c, data)
	}

	// Acknowledge unknown callbacks so the client stops the spinner
	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// staticCallback maps a fixed button unique to its handler
func (h *Handler) staticCallback(unique string) (tele.HandlerFunc, bool) {
	switch unique {
	case "next_word":
		return h.handleNext, true
	case "prev_word":
		return h.handlePrev, true
	case "add_word":
		return h.handleAdd, true
	case "search_words":
		return h.handleSearch, true
	case "list_words":
		return h.handleList, true
	case "history":
		return h.handleHistory, true
	case "start_drill":
		return h.handleDrill, true
	case "stop_drill":
		return h.handleStopDrill, true
	case "settings":
		return h.handleSettings, true
	case "toggle_mode":
		return h.handleToggleMode, true
	case "toggle_translation":
		return h.handleToggleTranslation, true
	case "skip_field":
		return h.handleSkipField, true
	case "keep_field":
		return h.handleKeepField, true
	case "cancel":
		return h.handleCancel, true
	case "back", "main_menu":
		return h.handleStart, true
	}
	return nil, false
}

// handleCancel aborts the current flow and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	text := fmt.Sprintf("🏠 Main menu\n\n%d words in your collection.\n\nSend any word to add it, or pick an action:", h.words.Count())
	return h.reply(c, text, mainMenuMarkup())
}

// handleList shows the first page of the word list
func (h *Handler) handleList(c tele.Context) error {
	return h.sendWordPage(c, 1)
}

// handlePagination switches the word list to the requested page
func (h *Handler) handlePagination(c tele.Context, data string) error {
	pageStr := strings.TrimPrefix(strings.TrimSpace(data), "page_")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Bad page number"})
	}

	return h.sendWordPage(c, page)
}

// sendWordPage shows one page of the collection in stored order
func (h *Handler) sendWordPage(c tele.Context, page int) error {
	words := h.words.All()
	if len(words) == 0 {
		return h.reply(c, "📋 Your collection is empty. Send any word to add it.", mainMenuMarkup())
	}

	totalPages := (len(words) + listPageSize - 1) / listPageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * listPageSize
	end := start + listPageSize
	if end > len(words) {
		end = len(words)
	}

	showTranslation := h.settings.Get().ShowTranslation

	text := fmt.Sprintf("📋 Words %d-%d of %d:\n\n", start+1, end, len(words))
	for i, w := range words[start:end] {
		if showTranslation {
			text += fmt.Sprintf("%d. %s\n", start+i+1, formatWordLine(w))
		} else {
			text += fmt.Sprintf("%d. %s\n", start+i+1, w.Word)
		}
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	// Prev/next navigation when there is more than one page
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.reply(c, text, markup)
}

// handleConfirmDelete removes the word named in the callback data
func (h *Handler) handleConfirmDelete(c tele.Context, data string) error {
	userID := c.Sender().ID

	data = strings.TrimSpace(data)
	word := strings.TrimPrefix(data, "confirmdel_")

	err := h.words.Delete(word)
	switch {
	case errors.Is(err, service.ErrWordNotFound):
		return h.reply(c, fmt.Sprintf("⚠️ '%s' is already gone.", word), mainMenuMarkup())

	case errors.Is(err, service.ErrNotSaved):
		h.logger.Warn("Delete kept in memory only", zap.Error(err), zap.String("word", word))
		return h.reply(c,
			"⚠️ Removed from memory, but writing to disk failed. The word may come back after a restart.",
			mainMenuMarkup())

	case err != nil:
		h.logger.Error("Failed to delete word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Could not delete the word"})
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)

	return h.reply(c, fmt.Sprintf("🗑 '%s' deleted. %d words left.", word, h.words.Count()), mainMenuMarkup())
}
