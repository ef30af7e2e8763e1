package feed

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesTCPSubscriber(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	defer client.Close()
	hub.Add(server)

	ev := BookEvent{Type: "book.created", ISBN: "0691161518", At: time.Now().UTC()}
	go hub.BroadcastJSON(ev)

	sc := bufio.NewScanner(client)
	require.True(t, sc.Scan())

	var got BookEvent
	require.NoError(t, json.Unmarshal(sc.Bytes(), &got))
	assert.Equal(t, "book.created", got.Type)
	assert.Equal(t, "0691161518", got.ISBN)
}

func TestBroadcastDropsDeadSubscriber(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	hub.Add(server)
	require.Equal(t, 1, hub.Count())

	// nobody reads the client side, so the write deadline trips
	_ = client.Close()
	hub.BroadcastJSON(BookEvent{Type: "book.updated", ISBN: "x"})

	assert.Equal(t, 0, hub.Count())
}

func TestStats(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, Stats{}, hub.Stats())

	server, client := net.Pipe()
	defer client.Close()
	hub.Add(server)

	stats := hub.Stats()
	assert.Equal(t, 1, stats.TCPClients)
	assert.Equal(t, 0, stats.WSClients)

	hub.Remove(server)
	assert.Equal(t, 0, hub.Count())
}

func TestWelcomeLine(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	defer client.Close()

	go hub.Welcome(server)

	sc := bufio.NewScanner(client)
	require.True(t, sc.Scan())

	var msg map[string]any
	require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
	assert.Equal(t, "welcome", msg["type"])
}
