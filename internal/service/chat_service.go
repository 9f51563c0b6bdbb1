package service

import (
	"context"
	"strings"

	"github.com/dafibh/fundvision/fundvision-backend/internal/advisor"
	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AdviceClient answers a query given the financial context and prior turns
type AdviceClient interface {
	GetAdvice(ctx context.Context, query, contextBlock string, history []domain.ChatMessage) advisor.Reply
}

// ChatService runs the financial-assistant conversation
type ChatService struct {
	advice         AdviceClient
	recentLimit    int
	eventPublisher websocket.EventPublisher
}

// NewChatService creates a ChatService. recentLimit bounds the transactions
// included in the context block.
func NewChatService(advice AdviceClient, recentLimit int) *ChatService {
	if recentLimit <= 0 {
		recentLimit = advisor.DefaultRecentTransactions
	}
	return &ChatService{
		advice:      advice,
		recentLimit: recentLimit,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ChatService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ChatService) publishEvent(sessionID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(sessionID, event)
	}
}

// ChatState is what the chat panel renders
type ChatState struct {
	Greeting string               `json:"greeting"`
	Messages []domain.ChatMessage `json:"messages"`
	Loading  bool                 `json:"loading"`
}

// ChatReply is the outcome of one submitted query
type ChatReply struct {
	Message  domain.ChatMessage `json:"message"`
	Fallback bool               `json:"fallback"`
	Failure  advisor.Failure    `json:"failure,omitempty"`
}

// History returns the greeting, the turn log and whether a reply is pending
func (s *ChatService) History(sess *session.Session) ChatState {
	conv := sess.Conversation()
	return ChatState{
		Greeting: domain.Greeting,
		Messages: conv.Messages(),
		Loading:  conv.IsAwaitingReply(),
	}
}

// Suggestions returns the one-tap queries offered under the input
func (s *ChatService) Suggestions() []domain.SuggestedTask {
	result := make([]domain.SuggestedTask, len(domain.SuggestedTasks))
	copy(result, domain.SuggestedTasks)
	return result
}

// Submit records the query, asks the advice client and records its reply.
// Advice failures are not errors: the reply then carries the fallback text.
func (s *ChatService) Submit(ctx context.Context, sess *session.Session, query string) (*ChatReply, error) {
	query = strings.TrimSpace(query)
	if len(query) > domain.MaxQueryLength {
		return nil, domain.ErrQueryTooLong
	}

	conv := sess.Conversation()
	history, err := conv.Begin(query)
	if err != nil {
		return nil, err
	}

	snapshot := sess.Snapshot()
	contextBlock := advisor.BuildContext(advisor.Snapshot{
		Accounts:     snapshot.Accounts,
		Budgets:      snapshot.Budgets,
		Transactions: snapshot.Transactions,
	}, s.recentLimit)

	reply := s.advice.GetAdvice(ctx, query, contextBlock, history)

	if err := conv.Complete(reply.Text); err != nil {
		// Only reachable if the conversation was completed elsewhere
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Failed to record advice reply")
		return nil, err
	}

	if reply.Fallback() {
		log.Warn().
			Str("session_id", sess.ID.String()).
			Str("failure", string(reply.Failure)).
			Msg("Chat reply fell back")
	}

	result := &ChatReply{
		Message:  domain.ChatMessage{Role: domain.ChatRoleModel, Text: reply.Text},
		Fallback: reply.Fallback(),
		Failure:  reply.Failure,
	}

	s.publishEvent(sess.ID, websocket.ChatReplied(result))

	return result, nil
}
