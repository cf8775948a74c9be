package repository

import (
	"context"
	"errors"
	"fmt"

	"quoteintake/internal/entity"
	"quoteintake/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const _quotesTable = "orcamentos"

var _quoteColumns = []string{
	"id", "nome", "email", "telefone", "rua", "numero", "complemento", "bairro",
	"cidade", "uf", "cep", "produto", "tipo_produto", "cor", "quantidade_paginas",
	"quantidade", "estampa", "observacoes", "data_criacao", "ip_cliente", "status",
}

type QuoteRepository struct {
	db *postgres.Postgres
}

func NewQuoteRepository(db *postgres.Postgres) *QuoteRepository {
	return &QuoteRepository{db}
}

// Create inserts q through queryExecuter and stores the generated id back
// into q.
func (qr *QuoteRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	q *entity.QuoteRequest,
) error {
	const op = "repository.quote.Create"

	query := qr.db.Builder.Insert(_quotesTable).
		Columns(_quoteColumns[1:]...).
		Values(
			q.Name,
			q.Email,
			q.Phone,
			q.Street,
			q.Number,
			nullable(q.Complement),
			q.Neighborhood,
			q.City,
			q.State,
			q.PostalCode,
			q.Product,
			nullable(q.ProductType),
			nullable(q.Color),
			q.PageCount,
			q.Quantity,
			q.Print,
			nullable(q.Notes),
			q.CreatedAt,
			nullable(q.ClientIP),
			string(q.Status),
		).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	if err = queryExecuter.QueryRow(ctx, sql, args...).Scan(&q.ID); err != nil {
		return fmt.Errorf("%s: query row: %w", op, err)
	}

	return nil
}

func (qr *QuoteRepository) GetByID(ctx context.Context, id int64) (*entity.QuoteRequest, error) {
	const op = "repository.quote.GetByID"

	query := qr.db.Builder.Select(_quoteColumns...).
		From(_quotesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanQuote(qr.db.Executer.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// GetRecent returns up to limit quotes, newest first.
func (qr *QuoteRepository) GetRecent(ctx context.Context, limit uint64) ([]*entity.QuoteRequest, error) {
	const op = "repository.quote.GetRecent"

	query := qr.db.Builder.Select(_quoteColumns...).
		From(_quotesTable).
		OrderBy("id DESC").
		Limit(limit)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := qr.db.Executer.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	quotes := make([]*entity.QuoteRequest, 0, limit)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		quotes = append(quotes, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return quotes, nil
}

func scanQuote(row pgx.Row) (*entity.QuoteRequest, error) {
	var (
		q                                         entity.QuoteRequest
		complement, productType, color, notes, ip *string
		status                                    string
	)

	err := row.Scan(
		&q.ID,
		&q.Name,
		&q.Email,
		&q.Phone,
		&q.Street,
		&q.Number,
		&complement,
		&q.Neighborhood,
		&q.City,
		&q.State,
		&q.PostalCode,
		&q.Product,
		&productType,
		&color,
		&q.PageCount,
		&q.Quantity,
		&q.Print,
		&notes,
		&q.CreatedAt,
		&ip,
		&status,
	)
	if err != nil {
		return nil, err
	}

	q.Complement = deref(complement)
	q.ProductType = deref(productType)
	q.Color = deref(color)
	q.Notes = deref(notes)
	q.ClientIP = deref(ip)
	q.Status = entity.Status(status)
	q.CreatedAt = q.CreatedAt.UTC()

	return &q, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
