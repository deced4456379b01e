package models

import (
	"fmt"
	"time"
)

type SubmissionScoredEvent struct {
	SubmissionID string `json:"submission_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Percentile   int    `json:"percentile"`
	Timestamp    int64  `json:"timestamp"`
}

// NewNotificationPayload builds the flat JSON object forwarded to the
// analytics sink: submission identity, timestamp, percentile and one
// "Q<n>" field per answer.
func NewNotificationPayload(name, email string, percentile int, answers []string, at time.Time) map[string]interface{} {
	payload := map[string]interface{}{
		"name":       name,
		"timestamp":  at.UTC().Format(time.RFC3339),
		"percentile": percentile,
	}

	if email != "" {
		payload["email"] = email
	}

	for i, answer := range answers {
		payload[fmt.Sprintf("Q%d", i+1)] = answer
	}

	return payload
}
