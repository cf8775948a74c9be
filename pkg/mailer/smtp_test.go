package mailer

import (
	"errors"
	"net/textproto"
	"testing"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestNewSMTPMailer_Validate(t *testing.T) {
	testCases := []struct {
		desc    string
		host    string
		from    string
		opts    []Option
		wantErr bool
	}{
		{"Defaults", "smtp.example.com", "loja@example.com", nil, false},
		{"MissingHost", "", "loja@example.com", nil, true},
		{"MissingSender", "smtp.example.com", "", nil, true},
		{"BadPort", "smtp.example.com", "loja@example.com", []Option{Port(70000)}, true},
		{"ZeroTimeout", "smtp.example.com", "loja@example.com", []Option{Timeout(0)}, true},
		{"UnknownPolicy", "smtp.example.com", "loja@example.com", []Option{TLSPolicy("starttls")}, true},
		{"SSL", "smtp.example.com", "loja@example.com", []Option{TLSPolicy(TLSSSL), Port(465)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := NewSMTPMailer(tc.host, tc.from, logger.NewNop(), tc.opts...)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewSMTPMailer() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSMTPMailer_BuildMessage(t *testing.T) {
	m, err := NewSMTPMailer("smtp.example.com", "loja@example.com", logger.NewNop(),
		Credentials("loja@example.com", "secret"), Timeout(5*time.Second))
	require.NoError(t, err)

	testCases := []struct {
		desc    string
		msg     *Message
		wantErr bool
	}{
		{
			desc: "TextAndHTML",
			msg: &Message{
				To:      []string{"cliente@example.com"},
				ReplyTo: "outro@example.com",
				Subject: "Orcamento",
				Text:    "corpo",
				HTML:    "<p>corpo</p>",
			},
		},
		{
			desc:    "NoRecipients",
			msg:     &Message{Subject: "Orcamento", Text: "corpo"},
			wantErr: true,
		},
		{
			desc:    "MalformedRecipient",
			msg:     &Message{To: []string{"not an address"}, Text: "corpo"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			envelope, err := m.buildMessage(tc.msg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []string{"Orcamento"}, envelope.GetGenHeader("Subject"))
			require.Len(t, envelope.GetParts(), 2)
		})
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		wantAuth bool
	}{
		{"AuthFailed", &textproto.Error{Code: 535, Msg: "bad credentials"}, true},
		{"AuthRequired", &textproto.Error{Code: 530, Msg: "must authenticate"}, true},
		{"WrappedAuth", errors.Join(errors.New("dial"), &textproto.Error{Code: 534, Msg: "weak"}), true},
		{"Mailbox", &textproto.Error{Code: 550, Msg: "no such user"}, false},
		{"Network", errors.New("connection refused"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := classify(tc.err)
			if errors.Is(got, entity.ErrMailAuth) != tc.wantAuth {
				t.Fatalf("classify(%v) auth = %v, want %v", tc.err, !tc.wantAuth, tc.wantAuth)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("classify(%v) lost the original error", tc.err)
			}
		})
	}
}
