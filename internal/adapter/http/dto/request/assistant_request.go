package request

// ChatMessageRequest is a prior conversation turn replayed by the client.
type ChatMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatConfigRequest tunes the assistant persona.
type ChatConfigRequest struct {
	Introduction string `json:"introduction"`
	Tone         string `json:"tone"`
}

type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []ChatMessageRequest `json:"history"`
	Config  ChatConfigRequest    `json:"config"`
}

type EnhanceRequest struct {
	Text    string `json:"text" binding:"required"`
	Context string `json:"context"`
}
