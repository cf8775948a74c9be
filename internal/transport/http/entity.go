// nolint: revive,staticcheck
// swagger:meta
package httpt

import (
	"time"

	"quoteintake/internal/entity"
)

// swagger:model SubmitResponse
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	QuoteID int64  `json:"orcamento_id,omitempty"`
}

// swagger:model StatusResponse
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// swagger:model Address
type Address struct {
	Street       string `json:"rua"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
	PostalCode   string `json:"cep"`
}

// swagger:model Quote
type Quote struct {
	ID          int64         `json:"id"`
	Name        string        `json:"nome"`
	Email       string        `json:"email"`
	Phone       string        `json:"telefone"`
	Address     Address       `json:"endereco"`
	Product     string        `json:"produto"`
	ProductType string        `json:"tipo_produto"`
	Color       string        `json:"cor"`
	PageCount   *int          `json:"quantidade_paginas"`
	Quantity    int           `json:"quantidade"`
	Print       string        `json:"estampa"`
	Notes       string        `json:"observacoes"`
	CreatedAt   time.Time     `json:"data_criacao"`
	Status      entity.Status `json:"status"`
}

func newQuote(q *entity.QuoteRequest) Quote {
	return Quote{
		ID:    q.ID,
		Name:  q.Name,
		Email: q.Email,
		Phone: q.Phone,
		Address: Address{
			Street:       q.Street,
			Number:       q.Number,
			Complement:   q.Complement,
			Neighborhood: q.Neighborhood,
			City:         q.City,
			State:        q.State,
			PostalCode:   q.PostalCode,
		},
		Product:     q.Product,
		ProductType: q.ProductType,
		Color:       q.Color,
		PageCount:   q.PageCount,
		Quantity:    q.Quantity,
		Print:       q.Print,
		Notes:       q.Notes,
		CreatedAt:   q.CreatedAt,
		Status:      q.Status,
	}
}
