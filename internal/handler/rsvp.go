package handler

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"hallbook/internal/models"
)

// RSVPReply is the outcome of matching an incoming message to a guest.
// Recorded is false when the message carried no clear answer and Response
// is the help text.
type RSVPReply struct {
	Guest    models.Guest
	Response string
	Recorded bool
}

type rsvpAnswer int

const (
	rsvpUnclear rsvpAnswer = iota
	rsvpYes
	rsvpNo
)

var (
	declinePhrases = []string{"not coming", "not attending", "can't come", "cannot come", "can't make it",
		"cannot make it", "won't", "will not", "unable", "decline", "regret", "❌"}
	declineWords  = []string{"no", "nope", "nah"}
	acceptPhrases = []string{"will be there", "will come", "✅"}
	acceptWords   = []string{"yes", "yep", "yeah", "sure", "accept", "accepted", "attending", "coming", "confirm", "confirmed"}
)

// classifyRSVP reads a yes or no out of free text. Declines are checked
// first so "not coming" is never taken as "coming".
func classifyRSVP(text string) rsvpAnswer {
	text = strings.ReplaceAll(strings.ToLower(text), "’", "'")
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	switch {
	case containsAny(text, declinePhrases...) || containsWord(words, declineWords...):
		return rsvpNo
	case containsAny(text, acceptPhrases...) || containsWord(words, acceptWords...):
		return rsvpYes
	}
	return rsvpUnclear
}

// HandleReply processes a free-text RSVP reply from phoneNumber. A clear yes
// marks the matching guest confirmed, a clear no clears confirmed. A message
// without a clear answer gets a help reply and changes nothing. Messages from
// unknown numbers are ignored.
func (c *GuestsController) HandleReply(ctx context.Context, phoneNumber, text string) (RSVPReply, bool) {
	sender := digits(phoneNumber)
	text = strings.TrimSpace(text)
	if sender == "" || text == "" {
		return RSVPReply{}, false
	}

	guests := c.List(ctx)
	i := slices.IndexFunc(guests, func(g models.Guest) bool {
		return g.Phone != "" && samePhone(digits(g.Phone), sender)
	})
	if i < 0 {
		return RSVPReply{}, false
	}
	id := guests[i].ID

	var confirmed bool
	var response string
	switch classifyRSVP(text) {
	case rsvpYes:
		confirmed = true
		response = fmt.Sprintf(
			"🎉 Wonderful! We're so excited to celebrate with you!\n\n"+
				"We've confirmed your attendance for the wedding of %s & %s on %s.\n\n"+
				"See you there! 💕",
			c.cfg.BrideName, c.cfg.GroomName, c.cfg.WeddingDate,
		)
	case rsvpNo:
		response = fmt.Sprintf(
			"Thank you for letting us know. We're sorry you won't be able to join us for the wedding of %s & %s.\n\n"+
				"We'll miss you! 💕",
			c.cfg.BrideName, c.cfg.GroomName,
		)
	default:
		return RSVPReply{
			Guest:    guests[i],
			Response: "Please reply with *YES* to accept or *NO* to decline the invitation. 🙏",
		}, true
	}

	guest, ok := c.setFlags(ctx, id, func(g *models.Guest) {
		g.Invited = true
		g.Confirmed = confirmed
	})
	if !ok {
		return RSVPReply{}, false
	}

	c.log.Info().Str("guest_id", id).Bool("confirmed", confirmed).Msg("RSVP recorded")
	return RSVPReply{Guest: guest, Response: response, Recorded: true}, true
}

// HandleMessage records an RSVP reply and answers the sender through the
// messenger, including the help reply for unclear messages. It is suitable
// as an incoming message callback.
func (c *GuestsController) HandleMessage(ctx context.Context, phoneNumber, text string) error {
	reply, ok := c.HandleReply(ctx, phoneNumber, text)
	if !ok || c.messenger == nil {
		return nil
	}
	if err := c.messenger.SendMessage(ctx, phoneNumber, reply.Response); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}

// containsAny checks if the text contains any of the given keywords
func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func containsWord(words []string, keywords ...string) bool {
	for _, w := range words {
		if slices.Contains(keywords, w) {
			return true
		}
	}
	return false
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// samePhone compares numbers with or without a country code
func samePhone(a, b string) bool {
	if a == b {
		return true
	}
	const local = 10
	return len(a) >= local && len(b) >= local && a[len(a)-local:] == b[len(b)-local:]
}
