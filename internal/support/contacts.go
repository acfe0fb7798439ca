package support

import (
	"net/url"
	"strings"

	"hallbook/internal/config"
	"hallbook/internal/models"
)

// ChatPath is where the live chat contact option points
const ChatPath = "/api/support/sessions"

// Contacts builds the support channels as deep links. Channels without a
// configured address are left out.
func Contacts(cfg config.SupportConfig) []models.ContactOption {
	out := []models.ContactOption{{
		Title:       "24/7 Live Chat",
		Description: "Get instant help from our support team",
		Icon:        "💬",
		URI:         ChatPath,
	}}

	if cfg.Phone != "" {
		out = append(out, models.ContactOption{
			Title:       "Call Support",
			Description: "Speak directly with our experts",
			Icon:        "📞",
			URI:         "tel:" + strings.ReplaceAll(cfg.Phone, " ", ""),
		})
	}
	if cfg.Email != "" {
		out = append(out, models.ContactOption{
			Title:       "Email Support",
			Description: "Send us detailed queries",
			Icon:        "📧",
			URI:         (&url.URL{Scheme: "mailto", Opaque: cfg.Email}).String(),
		})
	}
	if cfg.WhatsApp != "" {
		out = append(out, models.ContactOption{
			Title:       "WhatsApp",
			Description: "Quick support via WhatsApp",
			Icon:        "📱",
			URI:         "https://wa.me/" + strings.TrimPrefix(strings.ReplaceAll(cfg.WhatsApp, " ", ""), "+"),
		})
	}
	return out
}
