// Package mail delivers generated letters and reminder notices. The letter
// pipeline never touches this package; delivery is a caller concern.
package mail

import "context"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender is the delivery capability.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
