package message

import "time"

type SenderType string

const (
	SenderUser    SenderType = "user"
	SenderCaterer SenderType = "caterer"
	SenderVisitor SenderType = "visitor"
)

type Message struct {
	ID          string     `json:"id"`
	SenderID    *string    `json:"sender,omitempty"`
	SenderType  SenderType `json:"senderType"`
	SenderName  string     `json:"senderName"`
	SenderEmail string     `json:"senderEmail"`
	SenderPhone string     `json:"senderPhone"`
	RecipientID string     `json:"recipient"`
	Content     string     `json:"content"`
	Read        bool       `json:"read"`
	// OriginalID links a reply back to the message it answers.
	OriginalID *string   `json:"originalMessage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SendParams carries the message plus whatever identity the caller
// has. SenderID and SenderRole are empty for anonymous visitors.
type SendParams struct {
	RecipientID string
	Content     string
	SenderName  string
	SenderEmail string
	SenderPhone string
	SenderID    string
	SenderRole  string
}
