package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordlearner/internal/domain"
	"wordlearner/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const searchResultLimit = 20

// handleText routes free-form text through the current input flow
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Slash commands have their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingWord:
		// Word received, translation next
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})
		return c.Send(fmt.Sprintf("🔄 Now send the translation for '%s'", text), cancelMarkup())

	case domain.StateWaitingTranslation:
		// User sent the translation, part of speech is optional
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingPartOfSpeech,
			CurrentWord: state.CurrentWord,
			Translation: text,
		})
		return c.Send("🏷 Send the part of speech (noun, verb...) or skip it", skipMarkup())

	case domain.StateWaitingPartOfSpeech:
		return h.saveNewWord(c, userID, state.CurrentWord, state.Translation, text)

	case domain.StateWaitingSearch:
		h.ResetState(userID)
		return h.runSearch(c, text)

	case domain.StateWaitingDelete:
		h.ResetState(userID)
		return h.promptDeleteConfirm(c, text)

	case domain.StateWaitingEditWord:
		return h.beginEdit(c, userID, text)

	case domain.StateWaitingEditTranslate:
		// New translation received, part of speech next
		h.SetState(userID, &domain.StateData{
			State:          domain.StateWaitingEditPartSpeech,
			CurrentWord:    state.CurrentWord,
			Translation:    text,
			HasTranslation: true,
		})
		return c.Send("🏷 Now send the new part of speech, or keep the current one", keepMarkup())

	case domain.StateWaitingEditPartSpeech:
		return h.applyEdit(c, userID, state, &text)

	default:
		// Idle state - treat the text as a new word and start the input flow
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})
		return c.Send(fmt.Sprintf("🔄 Now send the translation for '%s'", text), cancelMarkup())
	}
}

// handleAdd starts the add flow, for /add and the add button.
// "/add apple" skips straight to the translation step.
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	if m := c.Message(); m != nil && strings.TrimSpace(m.Payload) != "" {
		word := strings.TrimSpace(m.Payload)
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: word,
		})
		return c.Send(fmt.Sprintf("🔄 Now send the translation for '%s'", word), cancelMarkup())
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
	return h.reply(c, "✍️ Send the word you want to add", cancelMarkup())
}

// handleEdit starts the edit flow, for /edit and "/edit apple".
func (h *Handler) handleEdit(c tele.Context) error {
	userID := c.Sender().ID

	if m := c.Message(); m != nil && strings.TrimSpace(m.Payload) != "" {
		return h.beginEdit(c, userID, strings.TrimSpace(m.Payload))
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingEditWord})
	return h.reply(c, "✏️ Which word do you want to edit? Send it exactly as stored", cancelMarkup())
}

// handleDelete starts the delete flow, for /delete and "/delete apple".
func (h *Handler) handleDelete(c tele.Context) error {
	userID := c.Sender().ID

	if m := c.Message(); m != nil && strings.TrimSpace(m.Payload) != "" {
		return h.promptDeleteConfirm(c, strings.TrimSpace(m.Payload))
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingDelete})
	return h.reply(c, "🗑 Which word should I delete? Send it exactly as stored", cancelMarkup())
}

// handleSearch runs a search for "/search app" or asks for a query.
func (h *Handler) handleSearch(c tele.Context) error {
	userID := c.Sender().ID

	if m := c.Message(); m != nil && strings.TrimSpace(m.Payload) != "" {
		return h.runSearch(c, strings.TrimSpace(m.Payload))
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingSearch})
	return h.reply(c, "🔍 Send a part of a word or translation to search for", cancelMarkup())
}

// handleSkipField saves the word without a part of speech
func (h *Handler) handleSkipField(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateWaitingPartOfSpeech {
		return c.Respond()
	}
	return h.saveNewWord(c, userID, state.CurrentWord, state.Translation, "")
}

// handleKeepField keeps the current field value during an edit
func (h *Handler) handleKeepField(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingEditTranslate:
		// Keep the translation, move on to the part of speech
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingEditPartSpeech,
			CurrentWord: state.CurrentWord,
		})
		return h.reply(c, "🏷 Now send the new part of speech, or keep the current one", keepMarkup())

	case domain.StateWaitingEditPartSpeech:
		return h.applyEdit(c, userID, state, nil)

	default:
		return c.Respond()
	}
}

// saveNewWord stores a completed add flow and reports the result
func (h *Handler) saveNewWord(c tele.Context, userID int64, word, translation, partOfSpeech string) error {
	saved, err := h.words.Add(word, translation, partOfSpeech)
	switch {
	case errors.Is(err, service.ErrWordExists):
		h.ResetState(userID)
		return h.reply(c, fmt.Sprintf("⚠️ '%s' is already in your collection. Use /edit %s to change it.", word, word), mainMenuMarkup())

	case errors.Is(err, domain.ErrEmptyWord):
		h.ResetState(userID)
		return h.reply(c, "⚠️ The word cannot be empty.", mainMenuMarkup())

	case errors.Is(err, service.ErrNotSaved):
		h.logger.Warn("Word kept in memory only",
			zap.Error(err),
			zap.String("word", saved.Word),
		)
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
		return h.reply(c,
			"⚠️ Saved in memory, but writing to disk failed. The word may be lost after a restart.",
			mainMenuMarkup())

	case err != nil:
		h.logger.Error("Failed to save word", zap.Error(err), zap.Int64("user_id", userID))
		h.ResetState(userID)
		return h.reply(c, "Could not save the word. Please try again.", mainMenuMarkup())
	}

	h.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.String("word", saved.Word),
		zap.String("translation", saved.Translation),
	)

	// Ready for the next word right away
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})

	text := fmt.Sprintf("✅ Saved!\n\n%s\n\nSend the next word or go back with /start", formatWord(saved, true))
	return h.reply(c, text, cancelMarkup())
}

// beginEdit looks the word up and asks for its new translation
func (h *Handler) beginEdit(c tele.Context, userID int64, word string) error {
	existing, err := h.words.Get(word)
	if err != nil {
		h.ResetState(userID)
		return h.reply(c, fmt.Sprintf("⚠️ '%s' is not in your collection. Send it exactly as stored, or find it with /search.", word), mainMenuMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State:       domain.StateWaitingEditTranslate,
		CurrentWord: existing.Word,
	})

	text := fmt.Sprintf("✏️ Editing %s\n\nSend the new translation, or keep the current one", formatWord(existing, true))
	return h.reply(c, text, keepMarkup())
}

// applyEdit finishes the edit flow. Nil partOfSpeech keeps the stored value;
// the translation pointer comes from the state.
func (h *Handler) applyEdit(c tele.Context, userID int64, state *domain.StateData, partOfSpeech *string) error {
	var translation *string
	if state.HasTranslation {
		translation = &state.Translation
	}

	updated, err := h.words.Edit(state.CurrentWord, translation, partOfSpeech)
	h.ResetState(userID)
	switch {
	case errors.Is(err, service.ErrWordNotFound):
		return h.reply(c, fmt.Sprintf("⚠️ '%s' disappeared while you were editing it.", state.CurrentWord), mainMenuMarkup())

	case errors.Is(err, service.ErrNotSaved):
		h.logger.Warn("Edit kept in memory only", zap.Error(err), zap.String("word", updated.Word))
		return h.reply(c,
			"⚠️ Changed in memory, but writing to disk failed. The change may be lost after a restart.",
			mainMenuMarkup())

	case err != nil:
		h.logger.Error("Failed to edit word", zap.Error(err), zap.Int64("user_id", userID))
		return h.reply(c, "Could not update the word. Please try again.", mainMenuMarkup())
	}

	h.logger.Info("Word updated",
		zap.Int64("user_id", userID),
		zap.String("word", updated.Word),
	)

	return h.reply(c, fmt.Sprintf("✅ Updated!\n\n%s", formatWord(updated, true)), mainMenuMarkup())
}

// promptDeleteConfirm asks for confirmation before removing a word
func (h *Handler) promptDeleteConfirm(c tele.Context, word string) error {
	existing, err := h.words.Get(word)
	if err != nil {
		return h.reply(c, fmt.Sprintf("⚠️ '%s' is not in your collection, nothing to delete.", word), mainMenuMarkup())
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🗑 Yes, delete it", "confirmdel_"+existing.Word)),
		markup.Row(btnCancel),
	)

	text := fmt.Sprintf("Delete this word?\n\n%s", formatWord(existing, true))
	return h.reply(c, text, markup)
}

// runSearch shows all words matching the query
func (h *Handler) runSearch(c tele.Context, query string) error {
	results := h.words.Search(query)
	if len(results) == 0 {
		return h.reply(c, fmt.Sprintf("🔍 Nothing matches '%s'.", query), mainMenuMarkup())
	}

	text := fmt.Sprintf("🔍 Found %d for '%s':\n\n", len(results), query)
	shown := results
	if len(shown) > searchResultLimit {
		shown = shown[:searchResultLimit]
	}
	for i, w := range shown {
		text += fmt.Sprintf("%d. %s\n", i+1, formatWordLine(w))
	}
	if len(results) > searchResultLimit {
		text += fmt.Sprintf("\n...and %d more. Narrow the query to see them.", len(results)-searchResultLimit)
	}

	return h.reply(c, text, mainMenuMarkup())
}

// formatWord renders a word card. The translation line is dropped when
// translations are hidden.
func formatWord(w domain.Word, showTranslation bool) string {
	text := "📝 " + w.Word
	if w.PartOfSpeech != "" {
		text += fmt.Sprintf(" (%s)", w.PartOfSpeech)
	}
	if showTranslation && w.Translation != "" {
		text += "\n🔄 " + w.Translation
	}
	return text
}

// formatWordLine renders a word as a single list line
func formatWordLine(w domain.Word) string {
	line := fmt.Sprintf("%s — %s", w.Word, w.Translation)
	if w.PartOfSpeech != "" {
		line += fmt.Sprintf(" (%s)", w.PartOfSpeech)
	}
	return line
}

// skipMarkup returns a keyboard with skip and cancel buttons
func skipMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnSkipField, btnCancel))
	return markup
}

// keepMarkup returns a keyboard with keep-current and cancel buttons
func keepMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnKeepField, btnCancel))
	return markup
}
