package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/planner"
)

const defaultMaxToolRounds = 8

// ChatService drives a conversational turn through the planning agent.
type ChatService interface {
	ProcessMessage(ctx context.Context, sessionID, message string) (*models.ChatResponse, error)
	ClearSession(ctx context.Context, sessionID string) error
}

// DefaultChatService runs the Gemini function-calling loop over a planner
// tool set constructed per turn from the session's authorization state.
type DefaultChatService struct {
	Sessions      SessionStore
	Catalog       planner.Catalog
	LLM           *GeminiClient
	Logger        *zap.Logger
	MaxToolRounds int
}

func (s *DefaultChatService) ProcessMessage(ctx context.Context, sessionID, message string) (*models.ChatResponse, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	// Re-authorization is reconstruction: the tool set for this turn is
	// built from the session's current authorization fact and stays fixed
	// for the whole turn. The model has no tool or parameter that can flip
	// it.
	toolset := planner.NewToolSet(s.Catalog, sess.PaymentAuthorized,
		planner.WithLogger(s.Logger),
		planner.WithObserver(planner.NewZapObserver(s.Logger)),
	)

	chat := s.LLM.StartChat(historyContents(sess.Messages))
	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("agent: send message: %w", err)
	}

	maxRounds := s.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = defaultMaxToolRounds
	}
	for round := 0; round < maxRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}
		parts := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			result := toolset.Invoke(ctx, call.Name, call.Args)
			s.recordBooking(sess, call.Name, result)
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: result,
			})
		}
		resp, err = chat.SendMessage(ctx, parts...)
		if err != nil {
			return nil, fmt.Errorf("agent: tool round %d: %w", round+1, err)
		}
	}

	reply := responseText(resp)
	if reply == "" {
		reply = "I couldn't process that request. Please try rephrasing."
	}

	sess.Messages = append(sess.Messages,
		models.ChatMessage{Role: "user", Content: message},
		models.ChatMessage{Role: "assistant", Content: reply},
	)
	if err := s.Sessions.Set(ctx, sessionID, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &models.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		Bookings:  sess.Bookings,
	}, nil
}

func (s *DefaultChatService) ClearSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// recordBooking appends a confirmed booking outcome to the session so the
// bookings summary reflects what the agent committed to.
func (s *DefaultChatService) recordBooking(sess *models.ChatSession, tool string, result map[string]interface{}) {
	var kind string
	switch tool {
	case planner.ToolBookFlight:
		kind = "flight"
	case planner.ToolBookHotel:
		kind = "hotel"
	default:
		return
	}
	status, _ := result["status"].(string)
	if status != models.BookingConfirmed {
		return
	}
	reference, _ := result["booking_reference"].(string)
	amount, _ := result["total_charged"].(float64)
	currency, _ := result["currency"].(string)
	sess.Bookings = append(sess.Bookings, models.BookingRecord{
		Type:      kind,
		Reference: reference,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: time.Now(),
	})
	s.Logger.Info("booking recorded",
		zap.String("type", kind),
		zap.String("reference", reference),
		zap.Float64("amount", amount))
}

func historyContents(messages []models.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return calls
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, fc)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
