package dto

// GenerateRequest payload. Whitespace-only prompts are rejected by the
// service before any network call.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse carries the model's text verbatim.
type GenerateResponse struct {
	Text string `json:"text"`
}
