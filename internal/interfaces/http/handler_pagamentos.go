package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/entities"
)

type pagamentoRequest struct {
	IDAluno        int     `json:"id_aluno"`
	DataPagamento  string  `json:"data_pagamento"`
	ValorPago      float64 `json:"valor_pago"`
	FormaPagamento string  `json:"forma_pagamento"`
	Referencia     string  `json:"referencia"`
	Status         string  `json:"status"`
}

func (r *pagamentoRequest) toEntity() (*entities.Pagamento, string) {
	if r.IDAluno <= 0 {
		return nil, "id_aluno is required"
	}
	if r.ValorPago < 0 {
		return nil, "valor_pago must not be negative"
	}
	if r.Status != entities.PagamentoPago && r.Status != entities.PagamentoPendente {
		return nil, "status must be Pago or Pendente"
	}
	data, err := ParseData(r.DataPagamento)
	if err != nil {
		return nil, "data_pagamento must be YYYY-MM-DD"
	}
	return &entities.Pagamento{
		IDAluno:        r.IDAluno,
		DataPagamento:  data,
		ValorPago:      r.ValorPago,
		FormaPagamento: SanitizeString(r.FormaPagamento),
		Referencia:     SanitizeString(r.Referencia),
		Status:         r.Status,
	}, ""
}

// ListPagamentos returns all payments, or one student's when ?id_aluno= is given.
func (h *Handler) ListPagamentos(c *gin.Context) {
	var pagamentos []entities.Pagamento
	var err error

	if raw := c.Query("id_aluno"); raw != "" {
		idAluno, convErr := strconv.Atoi(raw)
		if convErr != nil || idAluno <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id_aluno"})
			return
		}
		pagamentos, err = h.pagamentos.ListByAluno(idAluno)
	} else {
		pagamentos, err = h.pagamentos.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pagamentos)
}

func (h *Handler) GetPagamento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	pagamento, err := h.pagamentos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pagamento == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pagamento not found"})
		return
	}
	c.JSON(http.StatusOK, pagamento)
}

func (h *Handler) CreatePagamento(c *gin.Context) {
	var req pagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	pagamento, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	aluno, err := h.alunos.Get(pagamento.IDAluno)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if aluno == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aluno not found"})
		return
	}
	if err := h.pagamentos.Create(pagamento); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pagamento)
}

func (h *Handler) UpdatePagamento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.pagamentos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pagamento not found"})
		return
	}

	var req pagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	pagamento, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	pagamento.ID = id
	if err := h.pagamentos.Update(pagamento); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pagamento)
}

func (h *Handler) DeletePagamento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.pagamentos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pagamento not found"})
		return
	}
	if err := h.pagamentos.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RelatorioPagamentos lists payments between ?inicio= and ?fim= with totals.
func (h *Handler) RelatorioPagamentos(c *gin.Context) {
	inicio, err1 := ParseData(c.Query("inicio"))
	fim, err2 := ParseData(c.Query("fim"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inicio and fim must be YYYY-MM-DD"})
		return
	}

	relatorio, err := h.relatorios.PagamentosPeriodo(inicio, fim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, relatorio)
}

func (h *Handler) RelatorioInadimplencia(c *gin.Context) {
	relatorio, err := h.relatorios.Inadimplencia()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, relatorio)
}
