package models

import (
	"testing"
	"time"
)

func TestNewNotificationPayload(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	payload := NewNotificationPayload("Ada", "ada@example.com", 75, []string{"always", "sometimes"}, at)

	if payload["name"] != "Ada" {
		t.Errorf("name = %v, want Ada", payload["name"])
	}
	if payload["email"] != "ada@example.com" {
		t.Errorf("email = %v, want ada@example.com", payload["email"])
	}
	if payload["percentile"] != 75 {
		t.Errorf("percentile = %v, want 75", payload["percentile"])
	}
	if payload["timestamp"] != "2025-03-14T09:26:53Z" {
		t.Errorf("timestamp = %v, want 2025-03-14T09:26:53Z", payload["timestamp"])
	}
	if payload["Q1"] != "always" || payload["Q2"] != "sometimes" {
		t.Errorf("answer fields = %v/%v, want always/sometimes", payload["Q1"], payload["Q2"])
	}
	if _, ok := payload["Q3"]; ok {
		t.Error("unexpected Q3 field")
	}
}

func TestNewNotificationPayloadOmitsEmptyEmail(t *testing.T) {
	payload := NewNotificationPayload("Ada", "", 10, nil, time.Now())

	if _, ok := payload["email"]; ok {
		t.Error("email field should be omitted when empty")
	}
}

func TestRubricMaxScore(t *testing.T) {
	rubric := Rubric{
		{Responses: []ResponseOption{{Response: "a", Points: 2}, {Response: "b", Points: 7}}},
		{Responses: []ResponseOption{{Response: "a", Points: 3}}},
	}

	if got := rubric.MaxScore(); got != 10 {
		t.Errorf("MaxScore() = %v, want 10", got)
	}
}

func TestRubricValidate(t *testing.T) {
	if err := (Rubric{}).Validate(); err == nil {
		t.Error("empty rubric should be invalid")
	}

	bad := Rubric{{Responses: nil}}
	if err := bad.Validate(); err == nil {
		t.Error("question without responses should be invalid")
	}

	good := Rubric{{Responses: []ResponseOption{{Response: "a", Points: 1}}}}
	if err := good.Validate(); err != nil {
		t.Errorf("valid rubric rejected: %v", err)
	}
}
