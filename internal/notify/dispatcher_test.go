package notify_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/internal/notify"
	"quoteintake/pkg/logger"
	"quoteintake/pkg/mailer"
	mock_mailer "quoteintake/pkg/mailer/mock"
	mock_metric "quoteintake/pkg/metric/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const _operator = "operador@example.com"

func fakeQuote() *entity.QuoteRequest {
	return &entity.QuoteRequest{
		ID:           gofakeit.Int64(),
		Name:         gofakeit.Name(),
		Email:        "cliente@example.com",
		Phone:        "(11) 3456-7890",
		Street:       gofakeit.Street(),
		Number:       "100",
		Neighborhood: "Centro",
		City:         gofakeit.City(),
		State:        "SP",
		PostalCode:   "01310-100",
		Product:      "caneca",
		Quantity:     2,
		Print:        "flores",
		CreatedAt:    time.Now().UTC(),
		Status:       entity.StatusPending,
	}
}

func newDispatcher(t *testing.T, m mailer.Mailer, metrics *mock_metric.MockNotification) *notify.Dispatcher {
	t.Helper()

	r, err := notify.NewRenderer("")
	require.NoError(t, err)

	d, err := notify.NewDispatcher(m, r, _operator, logger.NewNop(), metrics, notify.Brand("Loja Teste"))
	require.NoError(t, err)
	return d
}

func TestDispatcher_Dispatch(t *testing.T) {
	errRefused := errors.New("connection refused")
	errAuth := fmt.Errorf("%w: 535 bad credentials", entity.ErrMailAuth)

	testCases := []struct {
		desc        string
		customerErr error
		operatorErr error
		metrics     func(m *mock_metric.MockNotification)
		want        notify.Result
	}{
		{
			desc: "BothDelivered",
			metrics: func(m *mock_metric.MockNotification) {
				m.EXPECT().Sent("customer", gomock.Any())
				m.EXPECT().Sent("operator", gomock.Any())
			},
			want: notify.Result{Customer: true, Operator: true},
		},
		{
			desc:        "CustomerAuthFailure",
			customerErr: errAuth,
			metrics: func(m *mock_metric.MockNotification) {
				m.EXPECT().Failed("customer", "auth", gomock.Any())
				m.EXPECT().Sent("operator", gomock.Any())
				m.EXPECT().PartialFailure()
			},
			want: notify.Result{Customer: false, Operator: true},
		},
		{
			desc:        "BothFail",
			customerErr: errRefused,
			operatorErr: errRefused,
			metrics: func(m *mock_metric.MockNotification) {
				m.EXPECT().Failed("customer", "smtp", gomock.Any())
				m.EXPECT().Failed("operator", "smtp", gomock.Any())
				m.EXPECT().PartialFailure()
			},
			want: notify.Result{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mock_mailer.NewMockMailer(ctrl)
			metrics := mock_metric.NewMockNotification(ctrl)
			tc.metrics(metrics)

			q := fakeQuote()

			var (
				mu   sync.Mutex
				sent = map[string]*mailer.Message{}
			)
			m.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).
				DoAndReturn(func(_ context.Context, msg *mailer.Message) error {
					mu.Lock()
					sent[msg.To[0]] = msg
					mu.Unlock()
					if msg.To[0] == q.Email {
						return tc.customerErr
					}
					return tc.operatorErr
				})

			got := newDispatcher(t, m, metrics).Dispatch(context.Background(), q)
			require.Equal(t, tc.want, got)

			customer := sent[q.Email]
			require.NotNil(t, customer)
			require.Equal(t, "Recebemos seu orçamento - Loja Teste", customer.Subject)
			require.Empty(t, customer.ReplyTo)
			require.NotEmpty(t, customer.Text)
			require.NotEmpty(t, customer.HTML)

			operator := sent[_operator]
			require.NotNil(t, operator)
			require.Equal(t, "Novo Orçamento - "+q.Name, operator.Subject)
			require.Equal(t, q.Email, operator.ReplyTo)
		})
	}
}

func TestDispatcher_IgnoresCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_mailer.NewMockMailer(ctrl)
	metrics := mock_metric.NewMockNotification(ctrl)
	metrics.EXPECT().Sent(gomock.Any(), gomock.Any()).Times(2)

	m.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, _ *mailer.Message) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := newDispatcher(t, m, metrics).Dispatch(ctx, fakeQuote())
	require.True(t, got.OK())
}

func TestDispatcher_RecoversFromMailerPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_mailer.NewMockMailer(ctrl)
	metrics := mock_metric.NewMockNotification(ctrl)
	metrics.EXPECT().Failed("customer", "panic", gomock.Any())
	metrics.EXPECT().Sent("operator", gomock.Any())
	metrics.EXPECT().PartialFailure()

	q := fakeQuote()
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, msg *mailer.Message) error {
			if msg.To[0] == q.Email {
				panic("nil smtp connection")
			}
			return nil
		})

	var got notify.Result
	require.NotPanics(t, func() {
		got = newDispatcher(t, m, metrics).Dispatch(context.Background(), q)
	})
	require.Equal(t, notify.Result{Customer: false, Operator: true}, got)
}

func TestNewDispatcher_Validate(t *testing.T) {
	r, err := notify.NewRenderer("")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	m := mock_mailer.NewMockMailer(ctrl)
	metrics := mock_metric.NewMockNotification(ctrl)

	testCases := []struct {
		desc     string
		mailer   mailer.Mailer
		renderer *notify.Renderer
		operator string
		opts     []notify.Option
		wantErr  bool
	}{
		{"Valid", m, r, _operator, nil, false},
		{"NoMailer", nil, r, _operator, nil, true},
		{"NoRenderer", m, nil, _operator, nil, true},
		{"NoOperator", m, r, "", nil, true},
		{"EmptyBrand", m, r, _operator, []notify.Option{notify.Brand("")}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := notify.NewDispatcher(tc.mailer, tc.renderer, tc.operator, logger.NewNop(), metrics, tc.opts...)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewDispatcher() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
