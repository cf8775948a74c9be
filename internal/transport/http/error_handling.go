package httpt

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quoteintake/internal/entity"
	"quoteintake/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_msgSubmitted       = "Orçamento enviado com sucesso!"
	_msgMissingFields   = "Preencha todos os campos obrigatórios: "
	_msgInternal        = "Erro interno ao processar seu orçamento."
	_msgInvalidForm     = "Não foi possível ler o formulário enviado."
	_msgTooManyRequests = "Muitas solicitações. Aguarde um momento e tente novamente."

	_msgSMTPOK   = "Conexão SMTP bem-sucedida!"
	_msgSMTPAuth = "Falha na autenticação SMTP. Verifique: " +
		"1. Se a senha de aplicativo está correta " +
		"2. Se a autenticação de dois fatores está ativada " +
		"3. Se o acesso de aplicativos menos seguros está ativado (não recomendado)"
	_msgSMTPError = "Erro na conexão SMTP: "
)

var _fieldMessages = []struct {
	err error
	msg string
}{
	{entity.ErrInvalidEmail, "Por favor, insira um endereço de email válido"},
	{entity.ErrInvalidPhone, "Por favor, insira um número de telefone válido (XX) XXXX-XXXX ou (XX) XXXXX-XXXX"},
	{entity.ErrInvalidPostalCode, "Por favor, insira um CEP válido no formato XXXXX-XXX"},
	{entity.ErrInvalidQuantity, "Por favor, insira uma quantidade válida (número inteiro positivo)"},
	{entity.ErrInvalidState, "Por favor, selecione uma UF válida"},
	{entity.ErrInvalidPageCount, "Por favor, insira uma quantidade de páginas válida (número inteiro positivo)"},
}

func (h *QuoteHandler) handleSubmitError(c *gin.Context, err error, op string) {
	ctx := c.Request.Context()
	log := h.log.Ctx(ctx)

	if errors.Is(err, entity.ErrInvalidData) {
		log.LogAttrs(ctx, logger.WarnLevel, "quote rejected",
			logger.String("op", op),
			logger.Err(err),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, SubmitResponse{Success: false, Message: validationMessage(err)})
		return
	}

	log.LogAttrs(ctx, logger.ErrorLevel, "internal server error",
		logger.String("op", op),
		logger.Err(err),
		logger.String("path", c.Request.URL.Path),
		logger.String("client_ip", c.ClientIP()),
	)
	c.JSON(http.StatusInternalServerError, SubmitResponse{Success: false, Message: _msgInternal})
}

func (h *QuoteHandler) handleServiceError(c *gin.Context, err error, op string) {
	ctx := c.Request.Context()
	log := h.log.Ctx(ctx)

	switch {
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(ctx, logger.WarnLevel, "quote not found",
			logger.String("op", op),
			logger.String("quote_id", c.Param("id")),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Orçamento não encontrado"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(ctx, logger.WarnLevel, "request timeout",
			logger.String("op", op),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Tempo de resposta esgotado"})
	default:
		log.LogAttrs(ctx, logger.ErrorLevel, "internal server error",
			logger.String("op", op),
			logger.Err(err),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
	}
}

// validationMessage renders every problem carried by err as one
// user-facing sentence list.
func validationMessage(err error) string {
	var missing *entity.MissingFieldsError
	if errors.As(err, &missing) {
		return _msgMissingFields + strings.Join(missing.Labels, ", ")
	}

	fieldErrs := collectFieldErrors(err)
	if len(fieldErrs) == 0 {
		return "Dados inválidos."
	}

	msgs := make([]string, 0, len(fieldErrs))
	seen := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fieldMessage(fe)
		if !seen[msg] {
			seen[msg] = true
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe *entity.FieldError) string {
	for _, m := range _fieldMessages {
		if errors.Is(fe.Err, m.err) {
			return m.msg
		}
	}
	return "Valor inválido para o campo " + fe.Field
}

func collectFieldErrors(err error) []*entity.FieldError {
	switch e := err.(type) {
	case *entity.FieldError:
		return []*entity.FieldError{e}
	case interface{ Unwrap() []error }:
		var out []*entity.FieldError
		for _, inner := range e.Unwrap() {
			out = append(out, collectFieldErrors(inner)...)
		}
		return out
	case interface{ Unwrap() error }:
		return collectFieldErrors(e.Unwrap())
	}
	return nil
}
