package nl2sql

import (
	"strconv"
	"strings"

	"catalog-chat-be/internal/constant"
	"catalog-chat-be/pkg/llm"
)

// SQLGenerationSystem renders the system prompt for the query-writing phase.
func SQLGenerationSystem(dialect string, topK int, tableInfo string) string {
	r := strings.NewReplacer(
		"{dialect}", dialect,
		"{top_k}", strconv.Itoa(topK),
		"{table_info}", tableInfo,
	)
	return r.Replace(constant.SQLGenerationSystemPrompt)
}

// AnswerGenerationSystem renders the system prompt for the answer phase.
func AnswerGenerationSystem(question, query, sqlResult string) string {
	r := strings.NewReplacer(
		"{input}", question,
		"{query}", query,
		"{sql_result}", sqlResult,
	)
	return r.Replace(constant.AnswerGenerationSystemPrompt)
}

// BuildSQLGenerationMessages assembles the full conversation for the
// query-writing phase: system prompt, the bounded history window, then the
// current question.
func BuildSQLGenerationMessages(system string, history []llm.Message, question string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: question})
	return messages
}

// WindowHistory trims a conversation to its most recent n messages.
func WindowHistory(history []llm.Message, n int) []llm.Message {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
