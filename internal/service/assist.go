package service

import (
	"context"
	"fmt"

	"wordlearner/internal/assist"
	"wordlearner/internal/domain"
)

const (
	topicExplain   = "explain"
	topicTips      = "tips"
	topicSentences = "sentences"
	topicQuiz      = "quiz"
)

// AssistService answers study questions about words through the chat API.
// Replies are cached per word and topic so repeated requests cost nothing.
type AssistService struct {
	client *assist.Client
	cache  *assist.Cache
}

// NewAssistService creates the service around the given chat client.
func NewAssistService(client *assist.Client) *AssistService {
	return &AssistService{
		client: client,
		cache:  assist.NewCache(),
	}
}

// Configured reports whether the underlying client has an API key.
func (s *AssistService) Configured() bool {
	return s.client.Configured()
}

// Explain describes the word's meaning, usage and typical contexts.
func (s *AssistService) Explain(ctx context.Context, word domain.Word) (string, error) {
	return s.askAbout(ctx, topicExplain, word,
		"你是一个专业的英语学习助手。请用简洁、友好的语言帮助用户学习英语单词。",
		fmt.Sprintf("请详细解释英语单词 %s的含义、用法和使用场景。", wordContext(word)))
}

// MemoryTips suggests mnemonic techniques for the word.
func (s *AssistService) MemoryTips(ctx context.Context, word domain.Word) (string, error) {
	return s.askAbout(ctx, topicTips, word,
		"你是一个专业的英语学习助手，擅长提供单词记忆技巧。",
		fmt.Sprintf("请为英语单词 %s提供有效的记忆技巧，包括联想记忆、词根词缀、发音特点等方法。", wordContext(word)))
}

// ExampleSentences generates usage examples with translations.
func (s *AssistService) ExampleSentences(ctx context.Context, word domain.Word) (string, error) {
	return s.askAbout(ctx, topicSentences, word,
		"你是一个专业的英语学习助手，擅长创建实用的例句。",
		fmt.Sprintf("请为英语单词 %s生成5个实用的例句，包含中文翻译，并尽量覆盖不同的使用场景。", wordContext(word)))
}

// Quiz builds a small test around the word.
func (s *AssistService) Quiz(ctx context.Context, word domain.Word) (string, error) {
	return s.askAbout(ctx, topicQuiz, word,
		"你是一个专业的英语学习助手，擅长设计学习测试。",
		fmt.Sprintf("请为英语单词 %s设计一个小测试，包括词义选择、填空、造句等不同类型的题目。", wordContext(word)))
}

// Chat holds a free-form conversation, optionally anchored to the word being
// studied. Chat replies are not cached.
func (s *AssistService) Chat(ctx context.Context, message string, current *domain.Word) (string, error) {
	system := "你是一个友好的英语学习助手，专注于帮助用户学习和记忆英语单词。"
	if current != nil {
		system += fmt.Sprintf(" 当前用户正在学习单词 %s。", wordContext(*current))
	}

	return s.client.Chat(ctx, []assist.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: message},
	})
}

func (s *AssistService) askAbout(ctx context.Context, topic string, word domain.Word, system, user string) (string, error) {
	key := fmt.Sprintf("%s|%s|%s|%s", topic, word.Word, word.Translation, word.PartOfSpeech)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	reply, err := s.client.Chat(ctx, []assist.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return "", err
	}

	s.cache.Set(key, reply)
	return reply, nil
}

func wordContext(w domain.Word) string {
	pos := ""
	if w.PartOfSpeech != "" {
		pos = fmt.Sprintf("，词性是%s", w.PartOfSpeech)
	}
	return fmt.Sprintf("'%s'（中文含义：%s%s）", w.Word, w.Translation, pos)
}
