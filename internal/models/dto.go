package models

// Data Transfer Objects

type ScoreRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email,omitempty"`
	Answers []string `json:"answers"`
}

type ScoreResponse struct {
	Percentile int    `json:"percentile"`
	Feedback   string `json:"feedback"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
