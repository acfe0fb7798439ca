package models

import "time"

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser  Sender = "user"
	SenderBot   Sender = "bot"
	SenderAgent Sender = "agent"
)

// ChatMessage is one line of a support chat session
type ChatMessage struct {
	ID        int       `json:"id"`
	Type      Sender    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// FAQ is a static question and answer pair
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// ContactOption is an external support channel opened through a URI
type ContactOption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URI         string `json:"uri"`
}

// TicketStatus is the progress of a support ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

func (s TicketStatus) Valid() bool {
	return s == TicketOpen || s == TicketInProgress || s == TicketResolved
}

// SupportTicket is a message thread sent from the "Send us a Message" form
type SupportTicket struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId,omitempty"`
	Subject   string        `json:"subject"`
	Status    TicketStatus  `json:"status"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// NewTicket is the input for opening a support ticket
type NewTicket struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// TicketReply is the input for adding a message to a ticket. Type defaults
// to user.
type TicketReply struct {
	Message string `json:"message"`
	Type    Sender `json:"type,omitempty"`
}
