package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// NotifyUser sends a plain text alert to the configured user.
	NotifyUser(message string) error
}
