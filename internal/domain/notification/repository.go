package notification

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_dispatcher.go -package=mocks . Dispatcher

// Dispatcher defines the interface for pushing events to live sessions.
type Dispatcher interface {
	// Client management
	Register(client *SSEClient)
	Unregister(clientID string)
	GetClientCount() int

	// Broadcasting
	BroadcastToAccount(accountID string, message *SSEMessage)
	SendToClient(clientID string, message *SSEMessage) error

	// Lifecycle
	Stop()
}
