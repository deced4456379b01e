package service

import (
	"encoding/json"
	"fmt"

	"github.com/finwell/score-service/internal/service/integration"
)

const feedbackSystemPrompt = `You are a friendly and insightful financial coach. A user just completed a personal finance survey. Your job is to interpret their answers and provide thoughtful, encouraging feedback. Highlight their financial strengths and gently point out one area they could improve, using plain language. Do not just repeat their answers. Instead, infer habits or patterns and give practical, engaging insights they can relate to. Avoid giving investment advice or legal recommendations.`

// ComposeFeedbackPrompt builds the system and user messages sent to the
// text-generation service. The user message carries the display name, the
// computed percentile and the raw answers serialized as JSON.
func ComposeFeedbackPrompt(name string, percentile int, answers []string) []integration.ChatMessage {
	serialized, _ := json.Marshal(answers)

	userPrompt := fmt.Sprintf(
		"Here is %s's financial profile:\n- Score percentile: %dth\n- Responses: %s\n\nPlease generate one or two short paragraphs of friendly, encouraging feedback summarizing what they're doing well and what they could improve.",
		name, percentile, serialized,
	)

	return []integration.ChatMessage{
		{Role: "system", Content: feedbackSystemPrompt},
		{Role: "user", Content: userPrompt},
	}
}
