package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/entities"
)

type atividadeRequest struct {
	Descricao      string `json:"descricao"`
	DataRealizacao string `json:"data_realizacao"`
	Alunos         []int  `json:"alunos"`
}

func (r *atividadeRequest) toEntity() (*entities.Atividade, string) {
	if r.Descricao == "" {
		return nil, "descricao is required"
	}
	data, err := ParseData(r.DataRealizacao)
	if err != nil {
		return nil, "data_realizacao must be YYYY-MM-DD"
	}
	return &entities.Atividade{
		Descricao:      SanitizeString(r.Descricao),
		DataRealizacao: data,
	}, ""
}

// ListAtividades returns activities, filterable by ?id_aluno= or ?id_turma=
// and an optional ?inicio=&fim= window.
func (h *Handler) ListAtividades(c *gin.Context) {
	var inicio, fim *time.Time
	if c.Query("inicio") != "" || c.Query("fim") != "" {
		i, err1 := ParseData(c.Query("inicio"))
		f, err2 := ParseData(c.Query("fim"))
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inicio and fim must be YYYY-MM-DD"})
			return
		}
		inicio, fim = &i, &f
	}

	var atividades []entities.Atividade
	var err error
	switch {
	case c.Query("id_aluno") != "":
		idAluno, convErr := strconv.Atoi(c.Query("id_aluno"))
		if convErr != nil || idAluno <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id_aluno"})
			return
		}
		atividades, err = h.atividades.ListByAluno(idAluno, inicio, fim)
	case c.Query("id_turma") != "":
		idTurma, convErr := strconv.Atoi(c.Query("id_turma"))
		if convErr != nil || idTurma <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id_turma"})
			return
		}
		atividades, err = h.atividades.ListByTurma(idTurma, inicio, fim)
	case inicio != nil:
		atividades, err = h.atividades.ListByPeriodo(*inicio, *fim)
	default:
		atividades, err = h.atividades.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, atividades)
}

func (h *Handler) GetAtividade(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	atividade, err := h.atividades.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if atividade == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		return
	}
	c.JSON(http.StatusOK, atividade)
}

func (h *Handler) CreateAtividade(c *gin.Context) {
	var req atividadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	atividade, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.atividades.Create(atividade, req.Alunos); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, atividade)
}

func (h *Handler) UpdateAtividade(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.atividades.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		return
	}

	var req atividadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	atividade, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	atividade.ID = id
	if err := h.atividades.Update(atividade, req.Alunos); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, atividade)
}

func (h *Handler) DeleteAtividade(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.atividades.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		return
	}
	if err := h.atividades.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) GetAtividadeParticipantes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	atividade, err := h.atividades.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if atividade == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		return
	}
	participantes, err := h.atividades.Participantes(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id_atividade":  atividade.ID,
		"descricao":     atividade.Descricao,
		"participantes": participantes,
	})
}

// RelatorioAtividades lists activities in a period, optionally for one turma.
func (h *Handler) RelatorioAtividades(c *gin.Context) {
	inicio, err1 := ParseData(c.Query("inicio"))
	fim, err2 := ParseData(c.Query("fim"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inicio and fim must be YYYY-MM-DD"})
		return
	}

	var idTurma *int
	if raw := c.Query("id_turma"); raw != "" {
		id, convErr := strconv.Atoi(raw)
		if convErr != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id_turma"})
			return
		}
		idTurma = &id
	}

	relatorio, err := h.relatorios.AtividadesPeriodo(inicio, fim, idTurma)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, relatorio)
}
