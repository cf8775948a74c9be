// Package intake turns a raw quote-request form into a persistable entity:
// required-field gate, per-field normalization, and record construction.
package intake

import (
	"net/url"
	"strings"
)

const (
	FieldName         = "nome"
	FieldEmail        = "email"
	FieldPhone        = "telefone"
	FieldStreet       = "rua"
	FieldNumber       = "numero"
	FieldComplement   = "complemento"
	FieldNeighborhood = "bairro"
	FieldCity         = "cidade"
	FieldState        = "uf"
	FieldPostalCode   = "cep"
	FieldProduct      = "produto"
	FieldMugType      = "tipo_caneca"
	FieldNotebookType = "tipo_caderno"
	FieldMugColor     = "cor_caneca"
	FieldPageCount    = "quantidade_de_paginas"
	FieldQuantity     = "quantidade"
	FieldPrint        = "estampa"
	FieldNotes        = "obs"
)

// KnownFields is the form schema; keys outside it are dropped before
// normalization.
var KnownFields = map[string]struct{}{
	FieldName: {}, FieldEmail: {}, FieldPhone: {}, FieldStreet: {}, FieldNumber: {},
	FieldComplement: {}, FieldNeighborhood: {}, FieldCity: {}, FieldState: {},
	FieldPostalCode: {}, FieldProduct: {}, FieldMugType: {}, FieldNotebookType: {},
	FieldMugColor: {}, FieldPageCount: {}, FieldQuantity: {}, FieldPrint: {}, FieldNotes: {},
}

// Form is a submitted form reduced to one raw value per key.
type Form map[string]string

// FormFromValues keeps the first value of every key, the way a browser form
// with unique input names is decoded.
func FormFromValues(values url.Values) Form {
	form := make(Form, len(values))
	for k, v := range values {
		if len(v) > 0 {
			form[k] = v[0]
		}
	}
	return form
}

// FilterKnown returns a copy of form holding only schema keys.
func FilterKnown(form Form) Form {
	out := make(Form, len(KnownFields))
	for k, v := range form {
		if _, ok := KnownFields[k]; ok {
			out[k] = v
		}
	}
	return out
}

func (f Form) trimmed(key string) string {
	return strings.TrimSpace(f[key])
}
