package httpt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
	"quoteintake/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_smtpCheckTimeout      = 30 * time.Second
	_maxFormMemory         = 8 << 20
)

// @Summary      Enviar orçamento
// @Description  Recebe o formulário de orçamento, valida, normaliza, grava e notifica cliente e operador por e-mail.
// @Tags         Orcamentos
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        nome        formData string true  "Nome completo"
// @Param        email       formData string true  "Email"
// @Param        telefone    formData string true  "Telefone"
// @Param        rua         formData string true  "Rua"
// @Param        numero      formData string true  "Número"
// @Param        complemento formData string false "Complemento"
// @Param        bairro      formData string true  "Bairro"
// @Param        cidade      formData string true  "Cidade"
// @Param        uf          formData string true  "UF"
// @Param        cep         formData string true  "CEP"
// @Param        produto     formData string true  "Produto"
// @Param        tipo_caneca formData string false "Tipo de caneca"
// @Param        tipo_caderno formData string false "Tipo de caderno"
// @Param        cor_caneca  formData string false "Cor da caneca"
// @Param        quantidade_de_paginas formData string false "Quantidade de páginas"
// @Param        quantidade  formData int    true  "Quantidade"
// @Param        estampa     formData string true  "Estampa"
// @Param        obs         formData string false "Observações"
// @Success      200 {object} httpt.SubmitResponse
// @Failure      400 {object} httpt.SubmitResponse "Campos ausentes ou inválidos"
// @Failure      429 {object} httpt.SubmitResponse "Limite de envios atingido"
// @Failure      500 {object} httpt.SubmitResponse "Erro interno"
// @Router       /enviar_orcamento [post]
func (h *QuoteHandler) submitQuoteHandler(c *gin.Context) {
	const op = "transport.submitQuoteHandler"

	ctx := c.Request.Context()
	log := h.log.Ctx(ctx)

	err := c.Request.ParseMultipartForm(_maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.LogAttrs(ctx, logger.WarnLevel, "unreadable form",
			logger.String("op", op),
			logger.Err(err),
		)
		c.JSON(http.StatusBadRequest, SubmitResponse{Success: false, Message: _msgInvalidForm})
		return
	}

	q, res, err := h.svc.Submit(ctx, intake.FormFromValues(c.Request.PostForm), c.ClientIP())
	if err != nil {
		h.handleSubmitError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "quote submitted",
		logger.String("op", op),
		logger.Int64("quote_id", q.ID),
		logger.Bool("customer_notified", res.Customer),
		logger.Bool("operator_notified", res.Operator),
	)

	c.JSON(http.StatusOK, SubmitResponse{
		Success: true,
		Message: _msgSubmitted,
		QuoteID: q.ID,
	})
}

// @Summary      Testar SMTP
// @Description  Conecta e autentica no servidor de e-mail sem enviar mensagens.
// @Tags         Diagnostico
// @Produce      json
// @Success      200 {object} httpt.StatusResponse
// @Failure      401 {object} httpt.StatusResponse "Credenciais recusadas"
// @Failure      500 {object} httpt.StatusResponse "Falha de conexão"
// @Router       /test_smtp [get]
func (h *QuoteHandler) testSMTPHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), _smtpCheckTimeout)
	defer cancel()

	err := h.svc.CheckMail(ctx)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, StatusResponse{Success: true, Message: _msgSMTPOK})
	case errors.Is(err, entity.ErrMailAuth):
		c.JSON(http.StatusUnauthorized, StatusResponse{Success: false, Message: _msgSMTPAuth})
	default:
		c.JSON(http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: _msgSMTPError + rootCause(err).Error(),
		})
	}
}

// @Summary      Consultar orçamento
// @Description  Retorna um orçamento gravado pelo seu identificador.
// @Tags         Admin
// @Produce      json
// @Security     BasicAuth
// @Param        id  path int true "Identificador do orçamento"
// @Success      200 {object} httpt.Quote
// @Failure      400 {object} httpt.ErrorResponse "Identificador inválido"
// @Failure      401 "Não autorizado"
// @Failure      404 {object} httpt.ErrorResponse "Orçamento não encontrado"
// @Failure      500 {object} httpt.ErrorResponse "Erro interno"
// @Router       /admin/orcamentos/{id} [get]
func (h *QuoteHandler) getQuoteHandler(c *gin.Context) {
	const op = "transport.getQuoteHandler"

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid quote id",
			logger.String("op", op),
			logger.String("value", idStr),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	q, err := h.svc.GetQuote(ctx, id)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newQuote(q))
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
