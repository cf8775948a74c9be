package mailer

import (
	"context"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer.go -package=mock

// Message is a single multipart e-mail. HTML is optional; when set it is sent
// as an alternative to Text.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg *Message) error
	// Ping dials the server and authenticates without sending anything.
	Ping(ctx context.Context) error
}
