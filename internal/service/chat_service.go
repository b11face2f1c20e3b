package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-chat-be/internal/apperror"
	"catalog-chat-be/internal/constant"
	"catalog-chat-be/internal/dto"
	"catalog-chat-be/internal/entity"
	"catalog-chat-be/internal/pkg/logger"
	"catalog-chat-be/internal/repository/memory"
	"catalog-chat-be/internal/repository/rediscache"
	"catalog-chat-be/internal/repository/specification"
	"catalog-chat-be/internal/repository/unitofwork"
	"catalog-chat-be/pkg/llm"
	"catalog-chat-be/pkg/nl2sql"
	"catalog-chat-be/pkg/sqlguard"

	"github.com/google/uuid"
)

// IChatService defines the catalog chat service interface
type IChatService interface {
	ProcessChat(ctx context.Context, userId uuid.UUID, request *dto.ProcessChatRequest) (*dto.ProcessChatResponse, error)
	CreateSession(ctx context.Context, userId uuid.UUID, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error
}

// chatService runs the question -> SQL -> answer pipeline. The user turn is
// committed before any model call so a provider failure never loses input;
// provider and query failures downgrade the reply instead of failing the
// request.
type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	llmProvider   llm.LLMProvider
	executor      *sqlguard.Executor
	sessionCache  *memory.SessionCache
	chatCache     *rediscache.ChatCache
	log           logger.ILogger
	llmTimeout    time.Duration
	sqlDialect    string
	sqlTopK       int
	historyWindow int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	executor *sqlguard.Executor,
	sessionCache *memory.SessionCache,
	chatCache *rediscache.ChatCache,
	log logger.ILogger,
	llmTimeout time.Duration,
	sqlDialect string,
	sqlTopK int,
	historyWindow int,
) IChatService {
	if historyWindow <= 0 {
		historyWindow = 20
	}
	return &chatService{
		uowFactory:    uowFactory,
		llmProvider:   llmProvider,
		executor:      executor,
		sessionCache:  sessionCache,
		chatCache:     chatCache,
		log:           log,
		llmTimeout:    llmTimeout,
		sqlDialect:    sqlDialect,
		sqlTopK:       sqlTopK,
		historyWindow: historyWindow,
	}
}

// CreateSession creates an empty chat session owned by the user.
func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	title := request.Title
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     truncateTitle(title),
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, &apperror.PersistenceError{Op: "create session", Err: err}
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, &apperror.PersistenceError{Op: "create session", Err: err}
	}
	if err := uow.Commit(); err != nil {
		return nil, &apperror.PersistenceError{Op: "create session", Err: err}
	}

	cs.sessionCache.Save(&chatSession)

	return &dto.CreateSessionResponse{Id: chatSession.Id}, nil
}

// GetAllSessions retrieves the user's chat sessions, most recently active
// first.
func (cs *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

// GetChatHistory retrieves the full message history for a session.
func (cs *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := cs.verifySession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:           msg.Id,
			Role:         msg.Role,
			Content:      msg.Content,
			GeneratedSQL: msg.GeneratedSQL,
			SQLResult:    msg.SQLResult,
			CreatedAt:    msg.CreatedAt,
		})
	}

	return resp, nil
}

// DeleteSession removes a session and all of its messages.
func (cs *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("session not found or access denied")
	}

	if err := uow.Begin(ctx); err != nil {
		return &apperror.PersistenceError{Op: "delete session", Err: err}
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, request.ChatSessionId); err != nil {
		return &apperror.PersistenceError{Op: "delete session", Err: err}
	}
	if err := uow.ChatSessionRepository().Delete(ctx, request.ChatSessionId); err != nil {
		return &apperror.PersistenceError{Op: "delete session", Err: err}
	}
	if err := uow.Commit(); err != nil {
		return &apperror.PersistenceError{Op: "delete session", Err: err}
	}

	cs.sessionCache.Delete(request.ChatSessionId)
	cs.chatCache.Invalidate(ctx, request.ChatSessionId)

	return nil
}

// ProcessChat runs one chat turn end to end: resolve the session, commit the
// user message, generate and (if valid) execute SQL, summarize, then commit
// the assistant message.
func (cs *chatService) ProcessChat(ctx context.Context, userId uuid.UUID, request *dto.ProcessChatRequest) (*dto.ProcessChatResponse, error) {
	chatSession, createdNew, err := cs.resolveSession(ctx, userId, request)
	if err != nil {
		return nil, err
	}

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Message,
		CreatedAt:     time.Now(),
	}

	// The user turn commits before the provider is called. Losing the question
	// to a flaky model would be worse than an orphaned turn.
	if err := cs.persistMessage(ctx, userMessage); err != nil {
		return nil, err
	}
	cs.chatCache.AppendMessage(ctx, chatSession.Id, userMessage)

	history := cs.loadHistory(ctx, chatSession.Id, userMessage.Id)
	outcome := cs.runPipeline(ctx, history, request.Message)

	assistantMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       outcome.reply,
		GeneratedSQL:  outcome.generatedSQL,
		SQLResult:     outcome.result.JSON(),
		CreatedAt:     time.Now(),
	}
	if err := cs.persistMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}
	cs.chatCache.AppendMessage(ctx, chatSession.Id, assistantMessage)

	return &dto.ProcessChatResponse{
		ChatSessionId:    chatSession.Id,
		CreatedNewChat:   createdNew,
		Reply:            outcome.reply,
		GeneratedSQL:     outcome.generatedSQL,
		QueryResult:      outcome.result,
		Degraded:         outcome.degraded,
		DegradedReason:   outcome.degradedReason,
		ResultsTruncated: outcome.truncated,
	}, nil
}

// pipelineOutcome is the internal result of one chat turn. A degraded outcome
// is still a successful turn from the caller's point of view.
type pipelineOutcome struct {
	reply          string
	generatedSQL   string
	result         *sqlguard.QueryResult
	degraded       bool
	degradedReason string
	truncated      bool
}

// runPipeline executes the three phases: write query, execute query, generate
// answer. Every failure mode folds into a reply rather than an error.
func (cs *chatService) runPipeline(ctx context.Context, history []llm.Message, question string) pipelineOutcome {
	system := nl2sql.SQLGenerationSystem(cs.sqlDialect, cs.sqlTopK, sqlguard.SchemaInfo(sqlguard.CatalogTables))
	messages := nl2sql.BuildSQLGenerationMessages(system, history, question)

	reply, err := cs.callLLM(ctx, messages)
	if err != nil {
		cs.log.Error("chat", "sql generation call failed", map[string]interface{}{"error": err.Error()})
		return pipelineOutcome{
			reply:          constant.DegradedReply,
			degraded:       true,
			degradedReason: "llm_unavailable",
		}
	}

	sqlText, ok := nl2sql.ExtractSQL(reply)
	if !ok {
		// No SQL in the reply means the model answered conversationally.
		return pipelineOutcome{reply: reply}
	}

	result, execErr := cs.executor.Execute(ctx, sqlText)
	truncated := false
	if execErr != nil {
		var (
			validationErr *apperror.ValidationError
			timeoutErr    *apperror.QueryTimeoutError
			tooLargeErr   *apperror.QueryTooLargeError
		)
		switch {
		case errors.As(execErr, &validationErr):
			cs.log.Warn("chat", "generated sql rejected", map[string]interface{}{
				"reason": validationErr.Reason,
				"sql":    sqlText,
			})
			return pipelineOutcome{
				reply:          constant.QueryRejectedReply,
				generatedSQL:   sqlText,
				degraded:       true,
				degradedReason: "query_rejected",
			}
		case errors.As(execErr, &timeoutErr):
			cs.log.Warn("chat", "generated sql timed out", map[string]interface{}{"sql": sqlText})
			return pipelineOutcome{
				reply:          constant.QueryTimeoutReply,
				generatedSQL:   sqlText,
				degraded:       true,
				degradedReason: "query_timeout",
			}
		case errors.As(execErr, &tooLargeErr):
			// Rows up to the cap came back with the error; answer from them.
			truncated = true
		default:
			cs.log.Error("chat", "query execution failed", map[string]interface{}{
				"error": execErr.Error(),
				"sql":   sqlText,
			})
			return pipelineOutcome{
				reply:          constant.QueryRejectedReply,
				generatedSQL:   sqlText,
				degraded:       true,
				degradedReason: "query_failed",
			}
		}
	}

	answerSystem := nl2sql.AnswerGenerationSystem(question, sqlText, result.JSON())
	answer, err := cs.callLLM(ctx, []llm.Message{
		{Role: "system", Content: answerSystem},
		{Role: "user", Content: question},
	})
	if err != nil {
		cs.log.Error("chat", "answer generation call failed", map[string]interface{}{"error": err.Error()})
		return pipelineOutcome{
			reply:          constant.AnswerFallbackReply,
			generatedSQL:   sqlText,
			result:         result,
			degraded:       true,
			degradedReason: "llm_unavailable",
			truncated:      truncated,
		}
	}

	return pipelineOutcome{
		reply:        answer,
		generatedSQL: sqlText,
		result:       result,
		truncated:    truncated,
	}
}

// callLLM bounds a single provider call so a stalled model degrades the turn
// instead of holding the request open.
func (cs *chatService) callLLM(ctx context.Context, messages []llm.Message) (string, error) {
	if cs.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cs.llmTimeout)
		defer cancel()
	}
	return cs.llmProvider.Chat(ctx, messages)
}

// resolveSession loads the requested session or creates one titled after the
// first message. A newly created session commits on its own before the
// pipeline starts.
func (cs *chatService) resolveSession(ctx context.Context, userId uuid.UUID, request *dto.ProcessChatRequest) (*entity.ChatSession, bool, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if request.ChatSessionId != nil {
		sess, err := cs.verifySession(ctx, uow, userId, *request.ChatSessionId)
		if err != nil {
			return nil, false, err
		}
		if sess == nil {
			return nil, false, fmt.Errorf("session not found or access denied")
		}
		return sess, false, nil
	}

	chatSession := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     truncateTitle(request.Message),
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, false, &apperror.PersistenceError{Op: "create session", Err: err}
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, chatSession); err != nil {
		return nil, false, &apperror.PersistenceError{Op: "create session", Err: err}
	}
	if err := uow.Commit(); err != nil {
		return nil, false, &apperror.PersistenceError{Op: "create session", Err: err}
	}

	cs.sessionCache.Save(chatSession)
	return chatSession, true, nil
}

// verifySession checks existence and ownership, consulting the in-memory
// cache before the database.
func (cs *chatService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId uuid.UUID) (*entity.ChatSession, error) {
	if sess, found := cs.sessionCache.Get(sessionId); found {
		if sess.UserId != userId {
			return nil, nil
		}
		return sess, nil
	}

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		cs.sessionCache.Save(sess)
	}
	return sess, nil
}

// persistMessage writes a single message in its own committed transaction and
// bumps the owning session's updated_at in the same transaction.
func (cs *chatService) persistMessage(ctx context.Context, message *entity.ChatMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return &apperror.PersistenceError{Op: "save message", Err: err}
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return &apperror.PersistenceError{Op: "save message", Err: err}
	}
	if err := uow.ChatSessionRepository().Touch(ctx, message.ChatSessionId); err != nil {
		return &apperror.PersistenceError{Op: "save message", Err: err}
	}
	return commitAsPersistence(uow, "save message")
}

func commitAsPersistence(uow unitofwork.UnitOfWork, op string) error {
	if err := uow.Commit(); err != nil {
		return &apperror.PersistenceError{Op: op, Err: err}
	}
	return nil
}

// loadHistory returns the prompt window in chronological order, excluding the
// just-persisted user turn. Redis serves the hot path; the database fallback
// fetches only the newest window instead of the whole session.
func (cs *chatService) loadHistory(ctx context.Context, sessionId uuid.UUID, excludeId uuid.UUID) []llm.Message {
	if cached, ok := cs.chatCache.GetRecentMessages(ctx, sessionId); ok {
		return nl2sql.WindowHistory(toPromptMessages(cached, excludeId), cs.historyWindow)
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	// Newest first so the limit keeps the most recent turns; the extra row
	// covers the excluded current message.
	stored, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: cs.historyWindow + 1},
	)
	if err != nil {
		cs.log.Warn("chat", "failed to load history", map[string]interface{}{"error": err.Error()})
		return nil
	}

	for i, j := 0, len(stored)-1; i < j; i, j = i+1, j-1 {
		stored[i], stored[j] = stored[j], stored[i]
	}
	history := toPromptMessages(stored, excludeId)
	return nl2sql.WindowHistory(history, cs.historyWindow)
}

func toPromptMessages(messages []*entity.ChatMessage, excludeId uuid.UUID) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Id == excludeId {
			continue
		}
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return history
}

func truncateTitle(s string) string {
	if len(s) <= constant.SessionTitleMaxLen {
		return s
	}
	return s[:constant.SessionTitleMaxLen-3] + "..."
}
