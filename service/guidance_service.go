package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
)

// GuidanceService wraps the Gemini completion API with prompt assembly and
// a deterministic fallback. Generate never fails outward: any error on the
// way to a completion is logged and replaced with the fallback message.
type GuidanceService struct {
	client    *genai.Client
	modelName string

	// generateFn performs the actual completion call. Overridable in tests.
	generateFn func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GuidanceServiceOption is a functional option for GuidanceService
type GuidanceServiceOption func(*GuidanceService)

// GuidanceWithClient sets the Gemini client. A nil client means the API
// credential is absent and every request takes the fallback path.
func GuidanceWithClient(client *genai.Client) GuidanceServiceOption {
	return func(s *GuidanceService) {
		s.client = client
	}
}

// GuidanceWithModel sets the Gemini model name
func GuidanceWithModel(name string) GuidanceServiceOption {
	return func(s *GuidanceService) {
		s.modelName = name
	}
}

// NewGuidanceService creates a new guidance service
func NewGuidanceService(opts ...GuidanceServiceOption) *GuidanceService {
	s := &GuidanceService{
		modelName: "gemini-2.0-flash",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generateFn == nil {
		s.generateFn = s.callGemini
	}
	return s
}

const guidanceSystemPrompt = `You are a compassionate mental wellness assistant. Your role is to:
1. Acknowledge the user's emotional state with empathy
2. Validate their feelings
3. Provide 3-5 practical, actionable coping strategies
4. Suggest wellness activities appropriate to their energy and focus levels
5. Offer encouragement and remind them this feeling is temporary

Keep responses warm, supportive, and under 200 words. Focus on immediate, practical help.`

const guidanceTimeout = 30 * time.Second

// Generate produces a short supportive message for a mood submission.
// displayName personalizes the response; pass "" for guests.
func (s *GuidanceService) Generate(ctx context.Context, req SubmitMoodRequest, displayName string) string {
	ctx, cancel := context.WithTimeout(ctx, guidanceTimeout)
	defer cancel()

	text, err := s.generateFn(ctx, guidanceSystemPrompt, buildGuidancePrompt(req, displayName))
	if err != nil {
		log.Printf("Error generating AI guidance: %v", err)
		return fallbackGuidance(req.Emotion)
	}

	// The model tends to emphasize with markdown bold, which the client
	// renders as literal asterisks.
	return strings.ReplaceAll(text, "**", "")
}

// buildGuidancePrompt assembles the user message. Optional context fields
// are included as labeled lines only when present.
func buildGuidancePrompt(req SubmitMoodRequest, displayName string) string {
	var b strings.Builder

	b.WriteString("Current emotional state:\n")
	fmt.Fprintf(&b, "- Dominant emotion: %s\n", req.Emotion)
	fmt.Fprintf(&b, "- Emotion intensity: %d/10\n", req.EmotionLevel)
	fmt.Fprintf(&b, "- Energy level: %d/10\n", req.EnergyLevel)
	fmt.Fprintf(&b, "- Focus level: %d/10\n", req.FocusLevel)
	fmt.Fprintf(&b, "- Overthinking: %s\n", req.Overthinking)

	if req.Trigger != "" {
		fmt.Fprintf(&b, "- Trigger: %s\n", req.Trigger)
	}
	if req.Pattern != "" {
		fmt.Fprintf(&b, "- Recurring pattern: %s\n", req.Pattern)
	}
	if req.UnderlyingCause != "" {
		fmt.Fprintf(&b, "- Underlying cause: %s\n", req.UnderlyingCause)
	}
	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, "- Additional notes: %s\n", req.AdditionalNotes)
	}

	name := displayName
	if name == "" {
		name = "friend"
	}
	fmt.Fprintf(&b, "\nAddress the user as %s. Please provide personalized wellness guidance and coping strategies.", name)

	return b.String()
}

// fallbackGuidance is the canned empathetic message used whenever the
// completion dependency is unavailable.
func fallbackGuidance(emotion string) string {
	return fmt.Sprintf("I hear you're feeling %s. Remember to take deep breaths, reach out to someone you trust, and be gentle with yourself. This feeling will pass.", strings.ToLower(emotion))
}

// callGemini performs one completion call against the Gemini API.
func (s *GuidanceService) callGemini(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.client == nil {
		return "", errors.New("gemini client not configured")
	}

	model := s.client.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty completion")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("completion contained no text")
	}

	return b.String(), nil
}
