package entity

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "pendente"
	StatusProcessing Status = "processando"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// States holds the 27 federative unit codes accepted in the "uf" field.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
	"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

func IsState(code string) bool {
	code = strings.ToUpper(code)
	for _, s := range States {
		if s == code {
			return true
		}
	}
	return false
}

type QuoteRequest struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"                         validate:"required,dbtext,max=100"`
	Email        string    `json:"email"                        validate:"required,dbtext,email,max=100"`
	Phone        string    `json:"telefone"                     validate:"required,dbtext,max=20"`
	Street       string    `json:"rua"                          validate:"required,dbtext,max=100"`
	Number       string    `json:"numero"                       validate:"required,dbtext,max=10"`
	Complement   string    `json:"complemento,omitempty"        validate:"dbtext,max=100"`
	Neighborhood string    `json:"bairro"                       validate:"required,dbtext,max=100"`
	City         string    `json:"cidade"                       validate:"required,dbtext,max=100"`
	State        string    `json:"uf"                           validate:"required,dbtext,len=2"`
	PostalCode   string    `json:"cep"                          validate:"required,dbtext,len=9"`
	Product      string    `json:"produto"                      validate:"required,dbtext,max=50"`
	ProductType  string    `json:"tipo_produto,omitempty"       validate:"dbtext,max=50"`
	Color        string    `json:"cor,omitempty"                validate:"dbtext,max=50"`
	PageCount    *int      `json:"quantidade_paginas,omitempty" validate:"omitempty,gt=0,lte=2147483647"`
	Quantity     int       `json:"quantidade"                   validate:"required,gt=0,lte=2147483647"`
	Print        string    `json:"estampa"                      validate:"required,dbtext,max=100"`
	Notes        string    `json:"observacoes,omitempty"        validate:"dbtext"`
	CreatedAt    time.Time `json:"data_criacao"`
	ClientIP     string    `json:"ip_cliente,omitempty"         validate:"dbtext,max=45"`
	Status       Status    `json:"status"`
}
