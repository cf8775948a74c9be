package mailer

import (
	"errors"
	"time"
)

const (
	TLSMandatory     = "mandatory"
	TLSOpportunistic = "opportunistic"
	TLSNone          = "none"
	TLSSSL           = "ssl"
)

type Option func(*SMTPMailer)

func Port(port int) Option {
	return func(m *SMTPMailer) {
		m.port = port
	}
}

func Credentials(username, password string) Option {
	return func(m *SMTPMailer) {
		m.username = username
		m.password = password
	}
}

func TLSPolicy(policy string) Option {
	return func(m *SMTPMailer) {
		m.tlsPolicy = policy
	}
}

func Timeout(timeout time.Duration) Option {
	return func(m *SMTPMailer) {
		m.timeout = timeout
	}
}

func (m *SMTPMailer) validate() error {
	if m.host == "" {
		return errors.New("host is required")
	}

	if m.from == "" {
		return errors.New("sender address is required")
	}

	if m.port <= 0 || m.port > 65535 {
		return errors.New("invalid port: must be in 1..65535")
	}

	if m.timeout <= 0 {
		return errors.New("invalid timeout: must be > 0")
	}

	switch m.tlsPolicy {
	case TLSMandatory, TLSOpportunistic, TLSNone, TLSSSL:
	default:
		return errors.New("invalid tls policy: " + m.tlsPolicy)
	}
	return nil
}
