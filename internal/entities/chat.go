package entities

import "time"

// ChatMessage is one inbound chatbot turn. StudentID is optional: without it
// the bot can only answer with generic information.
type ChatMessage struct {
	Message   string
	StudentID *int
	Channel   string // "web", "telegram", "whatsapp"
}

// ChatResponse is the composed reply for one turn. Data carries auxiliary
// figures (totals, counts, percentages) the caller may render separately.
type ChatResponse struct {
	Reply   string                 `json:"reply"`
	Options []string               `json:"options"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Conversa is one logged chatbot turn.
type Conversa struct {
	ID       int
	Canal    string
	IDAluno  *int
	Mensagem string
	Topico   string
	CriadaEm time.Time
}
