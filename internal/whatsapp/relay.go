package whatsapp

import (
	"context"
	"fmt"
)

// Sender delivers a text message to a phone number
type Sender interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

// SupportRelay forwards support chat messages to the support team's
// WhatsApp number
type SupportRelay struct {
	sender Sender
	to     string
}

func NewSupportRelay(sender Sender, supportNumber string) *SupportRelay {
	return &SupportRelay{sender: sender, to: supportNumber}
}

// Forward sends text to the support number tagged with its session
func (r *SupportRelay) Forward(ctx context.Context, sessionID, text string) error {
	if err := r.sender.SendMessage(ctx, r.to, relayText(sessionID, text)); err != nil {
		return fmt.Errorf("failed to relay support message: %w", err)
	}
	return nil
}

func relayText(sessionID, text string) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("💬 Support chat %s\n\n%s", short, text)
}
