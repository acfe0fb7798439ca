package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/internal/catalog"
	"hallbook/internal/handler"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{60000, "60,000"},
		{800000, "8,00,000"},
		{12345678, "1,23,45,678"},
		{-150000, "-1,50,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in), "groupDigits(%d)", tt.in)
	}
}

func TestOutputFormat(t *testing.T) {
	a := &app{format: "YAML"}
	f, err := a.outputFormat()
	require.NoError(t, err)
	assert.Equal(t, formatYAML, f)

	a.format = "xml"
	_, err = a.outputFormat()
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	tbl := table{headers: []string{"ID", "Name"}}
	tbl.add("g1", "Rajesh Uncle")
	data := []map[string]string{{"id": "g1"}}

	var buf bytes.Buffer
	a := &app{format: formatJSON}
	require.NoError(t, a.render(&buf, tbl, data))
	assert.JSONEq(t, `[{"id":"g1"}]`, buf.String())

	buf.Reset()
	a.format = formatTable
	require.NoError(t, a.render(&buf, tbl, data))
	assert.Contains(t, buf.String(), "Rajesh Uncle")
}

func TestGuestMenu(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemoryBackend(), zerolog.Nop())
	ctrl := handler.New(handler.Deps{Catalog: catalog.MustNew(), Store: store, Log: zerolog.Nop()}, handler.Config{}, nil)

	input := strings.Join([]string{
		"4", "Meena Aunty", "Aunt", "",
		"2",
		"1", "g1",
		"9",
		"5",
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, guestMenu(ctx, strings.NewReader(input), &out, ctrl.Guests))

	got := out.String()
	assert.Contains(t, got, "✅ Added Meena Aunty")
	assert.Contains(t, got, "📋 All Guests (4 total)")
	assert.Contains(t, got, "❌ Error sending invitation")
	assert.Contains(t, got, "Invalid command")
	assert.Contains(t, got, "Exiting...")
	assert.Len(t, ctrl.Guests.List(ctx), 4)
}

func TestFailedCommandStillReleasesStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("LOG_OUTPUT", "discard")

	a := &app{}
	root := newRootCmd(a)
	root.SetArgs([]string{"bookings", "status", "HHB0", "confirmed"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	require.NotNil(t, a.store, "the command opened the store before failing")

	a.close()
	assert.Nil(t, a.store)
	a.close()
}

func TestTicketsCommand(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LOG_OUTPUT", "discard")

	a := &app{}
	t.Cleanup(a.close)
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"-o", "json", "tickets", "open", "--subject", "Parking", "--message", "Is there valet parking?"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	var ticket models.SupportTicket
	require.NoError(t, json.Unmarshal(out.Bytes(), &ticket))
	assert.Equal(t, "Parking", ticket.Subject)
	assert.Equal(t, models.TicketOpen, ticket.Status)
}
