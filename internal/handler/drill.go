package handler

import (
	"fmt"

	"wordlearner/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDrill starts the timed word drill in the current chat
func (h *Handler) handleDrill(c tele.Context) error {
	userID := c.Sender().ID

	if h.words.Count() == 0 {
		return h.reply(c, "📋 Your collection is empty. Send any word to add it, then start the drill.", mainMenuMarkup())
	}

	if h.drill.Running() {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "The drill is already running"})
		}
		return c.Send("▶️ The drill is already running. Stop it with /stop.", drillMarkup())
	}

	h.drillMux.Lock()
	h.drillChat = c.Chat()
	h.drillMux.Unlock()

	settings := h.settings.Get()
	h.startDrill()

	h.logger.Info("Drill started",
		zap.Int64("user_id", userID),
		zap.Int("interval_seconds", settings.DisplayInterval),
		zap.String("mode", string(settings.DisplayMode)),
	)

	text := fmt.Sprintf("▶️ Drill started: a word every %ds in %s order. Stop it with /stop.",
		settings.DisplayInterval, settings.DisplayMode)
	return h.reply(c, text, drillMarkup())
}

// handleStopDrill stops the timed word drill
func (h *Handler) handleStopDrill(c tele.Context) error {
	if !h.drill.Running() {
		return h.reply(c, "⏹ No drill is running.", mainMenuMarkup())
	}

	h.drill.Stop()
	h.logger.Info("Drill stopped", zap.Int64("user_id", c.Sender().ID))

	return h.reply(c, "⏹ Drill stopped.", mainMenuMarkup())
}

// handleNext shows the next word
func (h *Handler) handleNext(c tele.Context) error {
	word := h.sequence.Next()
	if word == nil {
		return h.reply(c, "📋 Your collection is empty. Send any word to add it.", mainMenuMarkup())
	}
	return h.showWord(c, *word)
}

// handlePrev steps back to the previously shown word
func (h *Handler) handlePrev(c tele.Context) error {
	word := h.sequence.Previous()
	if word == nil {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Nothing earlier in the history"})
		}
		return c.Send("⬅️ Nothing earlier in the history.")
	}
	return h.showWord(c, *word)
}

// startDrill launches the runner with the configured interval
func (h *Handler) startDrill() {
	h.drill.Start(h.settings.Get().Interval(), h.showDrillWord)
}

// restartDrillIfRunning applies a new interval to a running drill
func (h *Handler) restartDrillIfRunning() {
	if !h.drill.Running() {
		return
	}
	h.drill.Stop()
	h.startDrill()
}

// showDrillWord posts a drill tick into the chat the drill was started from.
// It runs on the runner's goroutine.
func (h *Handler) showDrillWord(word domain.Word) {
	h.drillMux.Lock()
	chat := h.drillChat
	h.drillMux.Unlock()

	if chat == nil {
		return
	}

	text := formatWord(word, h.settings.Get().ShowTranslation)
	if _, err := h.bot.Send(chat, text, h.wordCardMarkup(word.Word)); err != nil {
		h.logger.Warn("Failed to send drill word",
			zap.Error(err),
			zap.String("word", word.Word),
		)
	}
}

// showWord renders a word card with navigation buttons
func (h *Handler) showWord(c tele.Context, word domain.Word) error {
	text := formatWord(word, h.settings.Get().ShowTranslation)
	return h.reply(c, text, h.wordCardMarkup(word.Word))
}

// wordCardMarkup returns the word card keyboard. The prev button only shows
// up when the history has something earlier, and the next button announces
// whether it moves forward through the history or on to a new word. Assist
// buttons only show up when the assist client is configured.
func (h *Handler) wordCardMarkup(word string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	navRow := tele.Row{}
	if h.sequence.HasPrevious() {
		navRow = append(navRow, btnPrev)
	}
	if h.sequence.HasNextInHistory() {
		navRow = append(navRow, markup.Data("➡️ Forward", "next_word"))
	} else {
		navRow = append(navRow, btnNext)
	}
	rows := []tele.Row{navRow}

	if h.assist.Configured() {
		rows = append(rows,
			markup.Row(
				markup.Data("💡 Explain", "explain_"+word),
				markup.Data("🧠 Memory tips", "tips_"+word),
			),
			markup.Row(
				markup.Data("✍️ Examples", "examples_"+word),
				markup.Data("❓ Quiz me", "quiz_"+word),
			),
		)
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// drillMarkup returns the keyboard shown while the drill is running
func drillMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnStopDrill))
	return markup
}
