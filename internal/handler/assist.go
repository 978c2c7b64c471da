package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// assistTimeout bounds one assistant request end to end.
const assistTimeout = 45 * time.Second

// handleAssist answers a word card assist button (explain_, tips_,
// examples_, quiz_). The word key travels in the callback data.
func (h *Handler) handleAssist(c tele.Context, data string) error {
	userID := c.Sender().ID

	if !h.assist.Configured() {
		return c.Respond(&tele.CallbackResponse{Text: "The assistant is not configured", ShowAlert: true})
	}

	data = strings.TrimSpace(data)
	topic, key, ok := strings.Cut(data, "_")
	if !ok {
		return c.Respond()
	}

	word, err := h.words.Get(key)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "That word is no longer in your collection", ShowAlert: true})
	}

	// Acknowledge right away, the model can take a while
	if err := c.Respond(&tele.CallbackResponse{Text: "Asking..."}); err != nil {
		h.logger.Debug("Failed to acknowledge assist callback", zap.Error(err))
	}
	c.Notify(tele.Typing)

	ctx, cancel := context.WithTimeout(context.Background(), assistTimeout)
	defer cancel()

	var header, reply string
	switch topic {
	case "explain":
		header = fmt.Sprintf("💡 About '%s':", word.Word)
		reply, err = h.assist.Explain(ctx, word)
	case "tips":
		header = fmt.Sprintf("🧠 Remembering '%s':", word.Word)
		reply, err = h.assist.MemoryTips(ctx, word)
	case "examples":
		header = fmt.Sprintf("✍️ '%s' in sentences:", word.Word)
		reply, err = h.assist.ExampleSentences(ctx, word)
	case "quiz":
		header = fmt.Sprintf("❓ Quiz on '%s':", word.Word)
		reply, err = h.assist.Quiz(ctx, word)
	default:
		return c.Respond()
	}

	if err != nil {
		h.logger.Error("Assist request failed",
			zap.Error(err),
			zap.String("topic", topic),
			zap.String("word", word.Word),
			zap.Int64("user_id", userID),
		)
		return c.Send("🤖 The assistant could not answer right now. Try again in a minute.")
	}

	return c.Send(header+"\n\n"+reply, h.wordCardMarkup(word.Word))
}

// handleAsk holds a free-form conversation: /ask how do I use this word?
// The question is anchored to the word currently being shown.
func (h *Handler) handleAsk(c tele.Context) error {
	userID := c.Sender().ID

	if !h.assist.Configured() {
		return c.Send("🤖 The assistant is not configured. Set DEEPSEEK_API_KEY to enable it.")
	}

	question := ""
	if m := c.Message(); m != nil {
		question = strings.TrimSpace(m.Payload)
	}
	if question == "" {
		return c.Send("🤖 Ask me anything about your words, e.g. /ask when would I use 'whether' instead of 'if'?")
	}

	c.Notify(tele.Typing)

	ctx, cancel := context.WithTimeout(context.Background(), assistTimeout)
	defer cancel()

	reply, err := h.assist.Chat(ctx, question, h.sequence.Current())
	if err != nil {
		h.logger.Error("Assist chat failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("🤖 The assistant could not answer right now. Try again in a minute.")
	}

	return c.Send("🤖 " + reply)
}
