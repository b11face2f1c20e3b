package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// DegradedReply is returned when the LLM provider is unreachable or errors.
const DegradedReply = "I apologize, but the assistant is currently unavailable. Please try again in a moment."

// QueryRejectedReply is returned when generated SQL fails validation.
const QueryRejectedReply = "I could not run that query against the catalog. Could you rephrase your question?"

// QueryTimeoutReply is returned when a generated query exceeds the execution
// deadline.
const QueryTimeoutReply = "That question took too long to answer against the catalog. Try narrowing it down."

// AnswerFallbackReply is returned when the query ran but the summarization
// call failed; the raw results still accompany it.
const AnswerFallbackReply = "I found matching results but could not summarize them right now. The raw data is attached."

// DefaultSessionTitle names sessions created without a first message.
const DefaultSessionTitle = "New conversation"

// SessionTitleMaxLen bounds titles derived from the first user message.
const SessionTitleMaxLen = 50
