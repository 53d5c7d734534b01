package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/entities"
)

type presencaRequest struct {
	IDAluno      int    `json:"id_aluno"`
	DataPresenca string `json:"data_presenca"`
	Presente     *bool  `json:"presente"`
}

func (r *presencaRequest) toEntity() (*entities.Presenca, string) {
	if r.IDAluno <= 0 {
		return nil, "id_aluno is required"
	}
	if r.Presente == nil {
		return nil, "presente is required"
	}
	data, err := ParseData(r.DataPresenca)
	if err != nil {
		return nil, "data_presenca must be YYYY-MM-DD"
	}
	return &entities.Presenca{
		IDAluno:      r.IDAluno,
		DataPresenca: data,
		Presente:     *r.Presente,
	}, ""
}

// ListPresencas returns attendance rows, filterable by ?data= or ?id_aluno=.
func (h *Handler) ListPresencas(c *gin.Context) {
	var presencas []entities.Presenca
	var err error

	switch {
	case c.Query("data") != "":
		data, parseErr := ParseData(c.Query("data"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data must be YYYY-MM-DD"})
			return
		}
		presencas, err = h.presencas.ListByData(data)
	case c.Query("id_aluno") != "":
		idAluno, convErr := strconv.Atoi(c.Query("id_aluno"))
		if convErr != nil || idAluno <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id_aluno"})
			return
		}
		presencas, err = h.presencas.ListByAluno(idAluno)
	default:
		presencas, err = h.presencas.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, presencas)
}

func (h *Handler) GetPresenca(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	presenca, err := h.presencas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if presenca == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "presenca not found"})
		return
	}
	c.JSON(http.StatusOK, presenca)
}

func (h *Handler) CreatePresenca(c *gin.Context) {
	var req presencaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	presenca, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	aluno, err := h.alunos.Get(presenca.IDAluno)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if aluno == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aluno not found"})
		return
	}

	// One attendance row per student per day
	exists, err := h.presencas.ExistsForAlunoData(presenca.IDAluno, presenca.DataPresenca)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "presenca already recorded for this aluno and date"})
		return
	}

	if err := h.presencas.Create(presenca); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, presenca)
}

func (h *Handler) UpdatePresenca(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.presencas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "presenca not found"})
		return
	}

	var req presencaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	presenca, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	presenca.ID = id
	if err := h.presencas.Update(presenca); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, presenca)
}

func (h *Handler) DeletePresenca(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.presencas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "presenca not found"})
		return
	}
	if err := h.presencas.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RelatorioPresencaDiaria lists everyone's attendance on ?data= (default today).
func (h *Handler) RelatorioPresencaDiaria(c *gin.Context) {
	raw := c.Query("data")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data must be YYYY-MM-DD"})
		return
	}
	data, err := ParseData(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data must be YYYY-MM-DD"})
		return
	}

	relatorio, err := h.relatorios.PresencaDiaria(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, relatorio)
}

// RelatorioFrequencia summarizes each student's attendance rate in a period.
func (h *Handler) RelatorioFrequencia(c *gin.Context) {
	inicio, err1 := ParseData(c.Query("inicio"))
	fim, err2 := ParseData(c.Query("fim"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inicio and fim must be YYYY-MM-DD"})
		return
	}

	relatorio, err := h.relatorios.FrequenciaPeriodo(inicio, fim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, relatorio)
}
