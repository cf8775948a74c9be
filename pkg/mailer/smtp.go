package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/pkg/logger"

	"github.com/wneessen/go-mail"
)

const (
	_defaultPort    = 587
	_defaultTimeout = 30 * time.Second
)

var _ Mailer = (*SMTPMailer)(nil)

// SMTPMailer opens a fresh connection per message.
type SMTPMailer struct {
	log logger.Logger

	host      string
	port      int
	username  string
	password  string
	from      string
	tlsPolicy string
	timeout   time.Duration
}

func NewSMTPMailer(host, from string, log logger.Logger, opts ...Option) (*SMTPMailer, error) {
	const op = "mailer.NewSMTPMailer"

	m := &SMTPMailer{
		log:       log,
		host:      host,
		from:      from,
		port:      _defaultPort,
		tlsPolicy: TLSMandatory,
		timeout:   _defaultTimeout,
	}

	for _, opt := range opts {
		opt(m)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	return m, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	const op = "mailer.SMTPMailer.Send"

	envelope, err := m.buildMessage(msg)
	if err != nil {
		return fmt.Errorf("%s: build message: %w", op, err)
	}

	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("%s: new client: %w", op, err)
	}

	start := time.Now()
	if err = client.DialAndSendWithContext(ctx, envelope); err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	m.log.LogAttrs(ctx, logger.DebugLevel, "mail delivered",
		logger.String("operation", op),
		logger.String("subject", msg.Subject),
		logger.Int("recipients", len(msg.To)),
		logger.String("duration", time.Since(start).String()),
	)

	return nil
}

func (m *SMTPMailer) Ping(ctx context.Context) error {
	const op = "mailer.SMTPMailer.Ping"

	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("%s: new client: %w", op, err)
	}

	if err = client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	if err = client.Close(); err != nil {
		return fmt.Errorf("%s: close: %w", op, err)
	}

	return nil
}

func (m *SMTPMailer) buildMessage(msg *Message) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("no recipients")
	}

	envelope := mail.NewMsg()
	if err := envelope.From(m.from); err != nil {
		return nil, fmt.Errorf("from %q: %w", m.from, err)
	}
	if err := envelope.To(msg.To...); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := envelope.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("reply-to: %w", err)
		}
	}

	envelope.Subject(msg.Subject)
	envelope.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		envelope.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return envelope, nil
}

func (m *SMTPMailer) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTimeout(m.timeout),
	}

	switch m.tlsPolicy {
	case TLSSSL:
		opts = append(opts, mail.WithSSLPort(false))
	case TLSOpportunistic:
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	case TLSNone:
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	default:
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	return mail.NewClient(m.host, opts...)
}

// classify maps SMTP authentication replies to entity.ErrMailAuth and keeps
// every other error as is.
func classify(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return fmt.Errorf("%w: %w", entity.ErrMailAuth, err)
		}
	}

	return err
}
