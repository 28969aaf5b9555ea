package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critter-exchange/critter-exchange/internal/domain/notification"
)

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub()
	client := notification.NewSSEClient("c1", nil)

	hub.Register(client)
	assert.Equal(t, 1, hub.GetClientCount())

	hub.Unregister("c1")
	assert.Equal(t, 0, hub.GetClientCount())

	// channel is closed on unregister
	_, ok := <-client.MessageChan
	assert.False(t, ok)
}

func TestBroadcastToAccount(t *testing.T) {
	hub := NewHub()
	misty := "misty"
	brock := "brock"
	mistyClient := notification.NewSSEClient("c1", &misty)
	brockClient := notification.NewSSEClient("c2", &brock)
	anonClient := notification.NewSSEClient("c3", nil)
	hub.Register(mistyClient)
	hub.Register(brockClient)
	hub.Register(anonClient)

	msg := notification.NewSSEMessage("trade_decided", []byte(`{}`))
	hub.BroadcastToAccount("misty", msg)

	assert.Len(t, mistyClient.MessageChan, 1)
	assert.Len(t, brockClient.MessageChan, 0)
	assert.Len(t, anonClient.MessageChan, 0)
}

func TestSendToClientUnknown(t *testing.T) {
	hub := NewHub()
	err := hub.SendToClient("nope", notification.NewSSEMessage("ping", nil))
	assert.ErrorIs(t, err, notification.ErrClientNotFound)
}

func TestSendToClientFullChannel(t *testing.T) {
	hub := NewHub()
	client := notification.NewSSEClient("c1", nil)
	hub.Register(client)

	msg := notification.NewSSEMessage("ping", nil)
	for i := 0; i < cap(client.MessageChan); i++ {
		assert.NoError(t, hub.SendToClient("c1", msg))
	}
	assert.ErrorIs(t, hub.SendToClient("c1", msg), notification.ErrChannelFull)
}
