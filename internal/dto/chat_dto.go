package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Reply     string `json:"reply"`
	MessageId string `json:"message_id"`
	Timestamp string `json:"timestamp"`
}

type ChatHistoryItem struct {
	Id      string `json:"id"`
	Sender  string `json:"sender"`
	Text    string `json:"text"`
	Time    string `json:"time"`
	Context string `json:"context"`
}

type ChatHistoryResponse struct {
	Success bool              `json:"success"`
	History []ChatHistoryItem `json:"history"`
}
