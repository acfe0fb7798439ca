// Package whatsapp sends and receives WhatsApp text messages through a
// linked device session stored in SQLite.
package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"

	"hallbook/internal/logging"
)

var ErrNotOnWhatsApp = errors.New("number is not registered on WhatsApp")

// MessageHandler is called for every incoming text message not sent by us
type MessageHandler func(ctx context.Context, phoneNumber, text string) error

type Config struct {
	DataDir string
}

type Service struct {
	client    *whatsmeow.Client
	container *sqlstore.Container
	cfg       Config
	log       zerolog.Logger

	mu      sync.RWMutex
	handler MessageHandler
}

// NewService opens the device store under cfg.DataDir and creates a client
func NewService(ctx context.Context, cfg Config, log zerolog.Logger) (*Service, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(cfg.DataDir, "whatsmeow.db"))
	container, err := sqlstore.New(ctx, "sqlite3", dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		container.Close()
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	s := &Service{
		client:    whatsmeow.NewClient(deviceStore, nil),
		container: container,
		cfg:       cfg,
		log:       logging.Component(log, "whatsapp"),
	}
	s.client.AddEventHandler(s.eventHandler)
	return s, nil
}

// LoggedIn reports whether a device is already paired
func (s *Service) LoggedIn() bool {
	return s.client.Store.ID != nil
}

// Connect connects to WhatsApp. Without a paired device the pairing QR
// codes are rendered to qrOut until the login completes.
func (s *Service) Connect(ctx context.Context, qrOut io.Writer) error {
	if s.LoggedIn() {
		if err := s.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		return nil
	}

	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	for evt := range qrChan {
		switch evt.Event {
		case "code":
			writeQR(qrOut, evt.Code)
		case "success":
			s.log.Info().Msg("Device paired")
		default:
			s.log.Info().Str("event", evt.Event).Msg("Login event")
		}
	}
	if !s.LoggedIn() {
		return errors.New("pairing did not complete")
	}
	return nil
}

func writeQR(w io.Writer, code string) {
	q, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		fmt.Fprintf(w, "QR Code: %s\n", code)
		return
	}
	fmt.Fprintln(w, "\n"+q.ToSmallString(false))
	fmt.Fprintln(w, "📱 Scan the QR code above with WhatsApp:")
	fmt.Fprintln(w, "   Settings > Linked Devices > Link a Device")
}

// Disconnect disconnects from WhatsApp and closes the device store
func (s *Service) Disconnect() {
	s.client.Disconnect()
	if err := s.container.Close(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to close device store")
	}
}

// SendMessage sends a text message to phoneNumber after checking that the
// number is on WhatsApp
func (s *Service) SendMessage(ctx context.Context, phoneNumber, message string) error {
	jid, err := s.resolve(ctx, phoneNumber)
	if err != nil {
		return err
	}

	resp, err := s.client.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", jid, err)
	}

	s.log.Debug().Str("jid", jid.String()).Str("message_id", string(resp.ID)).Msg("Message sent")
	return nil
}

// resolve returns the verified JID of a phone number
func (s *Service) resolve(ctx context.Context, phoneNumber string) (types.JID, error) {
	number := NormalizePhoneNumber(phoneNumber)
	resp, err := s.client.IsOnWhatsApp(ctx, []string{"+" + number})
	if err != nil {
		return types.JID{}, fmt.Errorf("failed to verify number on WhatsApp: %w", err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return types.JID{}, fmt.Errorf("%s: %w", number, ErrNotOnWhatsApp)
	}
	return resp[0].JID, nil
}

// SetMessageHandler sets the handler for incoming messages
func (s *Service) SetMessageHandler(handler MessageHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

func (s *Service) eventHandler(evt any) {
	switch evt := evt.(type) {
	case *events.Message:
		s.handleMessage(evt)
	case *events.Connected:
		s.log.Info().Msg("Connected to WhatsApp")
	case *events.Disconnected:
		s.log.Info().Msg("Disconnected from WhatsApp")
	case *events.LoggedOut:
		s.log.Warn().Msg("Logged out from WhatsApp")
	}
}

func (s *Service) handleMessage(msg *events.Message) {
	if msg.Info.IsFromMe || msg.Message == nil {
		return
	}
	text := messageText(msg.Message)
	if text == "" {
		return
	}

	s.mu.RLock()
	handler := s.handler
	s.mu.RUnlock()

	sender := msg.Info.Sender.User
	if handler == nil {
		s.log.Info().Str("sender", sender).Msg("Received message")
		return
	}
	if err := handler(context.Background(), sender, text); err != nil {
		s.log.Error().Err(err).Str("sender", sender).Msg("Error handling message")
	}
}

func messageText(m *waE2E.Message) string {
	if text := m.GetConversation(); text != "" {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(m.GetExtendedTextMessage().GetText())
}
