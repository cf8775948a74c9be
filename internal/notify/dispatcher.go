package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/pkg/logger"
	"quoteintake/pkg/mailer"
	"quoteintake/pkg/metric"

	"golang.org/x/sync/errgroup"
)

const _defaultBrand = "Micheli Personalizados"

// Result reports which of the two notifications the mail server accepted.
type Result struct {
	Customer bool
	Operator bool
}

func (r Result) OK() bool {
	return r.Customer && r.Operator
}

type Dispatcher struct {
	mailer   mailer.Mailer
	renderer *Renderer
	log      logger.Logger
	metrics  metric.Notification

	brand    string
	operator string
}

func NewDispatcher(
	m mailer.Mailer,
	renderer *Renderer,
	operator string,
	log logger.Logger,
	metrics metric.Notification,
	opts ...Option,
) (*Dispatcher, error) {
	d := &Dispatcher{
		mailer:   m,
		renderer: renderer,
		log:      log,
		metrics:  metrics,
		brand:    _defaultBrand,
		operator: operator,
	}

	for _, opt := range opts {
		opt(d)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("notify.NewDispatcher: %w", err)
	}

	return d, nil
}

// Dispatch sends the customer and operator notifications concurrently. It
// never fails: each send that does not go through is logged and reported as
// false in the Result. The sends are not tied to ctx cancellation.
func (d *Dispatcher) Dispatch(ctx context.Context, q *entity.QuoteRequest) Result {
	ctx = context.WithoutCancel(ctx)

	var (
		res Result
		g   errgroup.Group
	)
	g.Go(func() error {
		res.Customer = d.NotifyCustomer(ctx, q)
		return nil
	})
	g.Go(func() error {
		res.Operator = d.NotifyOperator(ctx, q)
		return nil
	})
	_ = g.Wait()

	if !res.OK() {
		d.metrics.PartialFailure()
	}

	return res
}

func (d *Dispatcher) NotifyCustomer(ctx context.Context, q *entity.QuoteRequest) bool {
	return d.send(ctx, KindCustomer, q, func(r Rendered) *mailer.Message {
		return &mailer.Message{
			To:      []string{q.Email},
			Subject: "Recebemos seu orçamento - " + d.brand,
			Text:    r.Text,
			HTML:    r.HTML,
		}
	})
}

func (d *Dispatcher) NotifyOperator(ctx context.Context, q *entity.QuoteRequest) bool {
	return d.send(ctx, KindOperator, q, func(r Rendered) *mailer.Message {
		return &mailer.Message{
			To:      []string{d.operator},
			ReplyTo: q.Email,
			Subject: "Novo Orçamento - " + q.Name,
			Text:    r.Text,
			HTML:    r.HTML,
		}
	})
}

func (d *Dispatcher) send(
	ctx context.Context,
	kind Kind,
	q *entity.QuoteRequest,
	build func(Rendered) *mailer.Message,
) (sent bool) {
	const op = "notify.Dispatcher.send"

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.fail(ctx, op, kind, q, "panic", fmt.Errorf("%s: recovered: %v", op, r), time.Since(start))
			sent = false
		}
	}()

	rendered, err := d.renderer.Render(kind, d.templateData(q))
	if err != nil {
		d.fail(ctx, op, kind, q, "render", err, time.Since(start))
		return false
	}

	msg := build(rendered)
	if err = d.mailer.Send(ctx, msg); err != nil {
		d.fail(ctx, op, kind, q, errorClass(err), err, time.Since(start))
		return false
	}

	d.metrics.Sent(string(kind), time.Since(start))
	d.log.LogAttrs(ctx, logger.InfoLevel, "notification sent",
		logger.String("operation", op),
		logger.String("kind", string(kind)),
		logger.Int64("quote_id", q.ID),
		logger.String("recipient", logger.MaskEmail(msg.To[0])),
	)

	return true
}

func (d *Dispatcher) fail(
	ctx context.Context,
	op string,
	kind Kind,
	q *entity.QuoteRequest,
	class string,
	err error,
	elapsed time.Duration,
) {
	recipient := q.Email
	if kind == KindOperator {
		recipient = d.operator
	}

	d.metrics.Failed(string(kind), class, elapsed)
	d.log.LogAttrs(ctx, logger.ErrorLevel, "notification failed",
		logger.String("operation", op),
		logger.String("kind", string(kind)),
		logger.Int64("quote_id", q.ID),
		logger.String("recipient", logger.MaskEmail(recipient)),
		logger.String("error_class", class),
		logger.Err(err),
	)
}

func (d *Dispatcher) templateData(q *entity.QuoteRequest) map[string]any {
	var pages any = ""
	if q.PageCount != nil {
		pages = *q.PageCount
	}

	return map[string]any{
		"id":                 q.ID,
		"nome":               q.Name,
		"email":              q.Email,
		"telefone":           q.Phone,
		"rua":                q.Street,
		"numero":             q.Number,
		"complemento":        q.Complement,
		"bairro":             q.Neighborhood,
		"cidade":             q.City,
		"uf":                 q.State,
		"cep":                q.PostalCode,
		"produto":            q.Product,
		"tipo_produto":       q.ProductType,
		"cor":                q.Color,
		"quantidade_paginas": pages,
		"quantidade":         q.Quantity,
		"estampa":            q.Print,
		"observacoes":        q.Notes,
		"data_criacao":       q.CreatedAt,
		"ip_cliente":         q.ClientIP,
		"status":             string(q.Status),
		"marca":              d.brand,
	}
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, entity.ErrMailAuth):
		return "auth"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "smtp"
	}
}
