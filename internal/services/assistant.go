package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lunelabs/cyclefem/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AssistantCompletion is the language-model backend. A nil backend means
// no key is configured and every answer comes from the fallback catalog.
type AssistantCompletion interface {
	Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

type AssistantChatStore interface {
	Create(message *models.ChatMessage) error
}

type AssistantService struct {
	backend AssistantCompletion
	chats   AssistantChatStore
	logger  zerolog.Logger
}

type AssistantReply struct {
	Response string
	Fallback bool
}

func NewAssistantService(backend AssistantCompletion, chats AssistantChatStore) *AssistantService {
	return &AssistantService{
		backend: backend,
		chats:   chats,
		logger:  log.With().Str("component", "assistant").Logger(),
	}
}

func (service *AssistantService) BackendConfigured() bool {
	return service.backend != nil
}

// Answer resolves a free-text question, degrading to a canned response
// whenever the backend is missing or fails. It never returns an error:
// the chat surface always has something to say.
func (service *AssistantService) Answer(ctx context.Context, user *models.User, message string, cycleCount int, prediction *Prediction) AssistantReply {
	if service.backend == nil {
		return AssistantReply{Response: FallbackResponse(message), Fallback: true}
	}

	prompt := BuildAssistantContext(user, cycleCount, prediction)
	response, err := service.backend.Complete(ctx, prompt, message)
	if err != nil || strings.TrimSpace(response) == "" {
		service.logger.Warn().Err(err).Msg("assistant backend unavailable, serving fallback response")
		return AssistantReply{Response: FallbackResponse(message), Fallback: true}
	}

	service.saveExchange(user.ID, message, response)
	return AssistantReply{Response: response}
}

// History storage is best-effort: a failed insert loses one transcript
// row, never the reply.
func (service *AssistantService) saveExchange(userID uint, message string, response string) {
	if service.chats == nil {
		return
	}
	entry := models.ChatMessage{UserID: userID, Message: message, Response: response}
	if err := service.chats.Create(&entry); err != nil {
		service.logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to store chat exchange")
	}
}

// BuildAssistantContext assembles the system prompt with the numeric facts
// the core supplies, so the model can cite the user's own dates.
func BuildAssistantContext(user *models.User, cycleCount int, prediction *Prediction) string {
	name := "there"
	cycleLength := models.DefaultCycleLength
	if user != nil {
		if strings.TrimSpace(user.Name) != "" {
			name = strings.TrimSpace(user.Name)
		}
		if user.CycleLength > 0 {
			cycleLength = user.CycleLength
		}
	}

	var sb strings.Builder
	sb.WriteString("You are a health assistant specialized in the menstrual cycle and reproductive health.\n\n")
	sb.WriteString("About the user:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", name))
	sb.WriteString(fmt.Sprintf("- Average cycle length: %d days\n", cycleLength))
	sb.WriteString(fmt.Sprintf("- Logged cycles: %d\n", cycleCount))
	if prediction != nil {
		sb.WriteString(fmt.Sprintf("- Next period expected: %s\n", FormatDay(prediction.NextPeriod)))
		sb.WriteString(fmt.Sprintf("- Ovulation expected: %s\n", FormatDay(prediction.Ovulation)))
		sb.WriteString(fmt.Sprintf("- Fertile window: %s to %s\n",
			FormatDay(prediction.FertileWindow.Start), FormatDay(prediction.FertileWindow.End)))
	} else {
		sb.WriteString("- No prediction available yet\n")
	}
	sb.WriteString(`
Guidelines:
- Answer with empathy, accuracy and reassurance
- Give practical, science-based advice
- Recommend seeing a gynecologist or doctor whenever the question needs a professional opinion
- Keep a warm, accessible tone and stay concise
- Never invent medical information
- Always remind the user to consult a professional for serious concerns`)

	return sb.String()
}
