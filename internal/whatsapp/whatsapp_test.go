package whatsapp

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"google.golang.org/protobuf/proto"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "919876543210"},
		{"+91 98765 43210", "919876543210"},
		{"098765-43210", "919876543210"},
		{"0091 9876543210", "919876543210"},
		{"(+1) 555-000-1111", "15550001111"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.in))
		})
	}
}

type stubSender struct {
	to, msg string
	err     error
}

func (s *stubSender) SendMessage(_ context.Context, to, msg string) error {
	s.to, s.msg = to, msg
	return s.err
}

func TestSupportRelay_Forward(t *testing.T) {
	s := &stubSender{}
	r := NewSupportRelay(s, "919876543210")

	require.NoError(t, r.Forward(context.Background(), "0b3c9a4e-1111-2222", "where is my refund?"))
	assert.Equal(t, "919876543210", s.to)
	assert.Equal(t, "💬 Support chat 0b3c9a4e\n\nwhere is my refund?", s.msg)

	s.err = errors.New("offline")
	assert.Error(t, r.Forward(context.Background(), "abc", "hi"))
}

func TestMessageText(t *testing.T) {
	assert.Equal(t, "yes", messageText(&waE2E.Message{Conversation: proto.String("  yes ")}))
	assert.Equal(t, "we will come", messageText(&waE2E.Message{
		ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("we will come")},
	}))
	assert.Empty(t, messageText(&waE2E.Message{}))
}

func TestWriteQR(t *testing.T) {
	var buf bytes.Buffer
	writeQR(&buf, "2@pairing-code")
	assert.Contains(t, buf.String(), "Linked Devices")
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("\n")), 10)
}
