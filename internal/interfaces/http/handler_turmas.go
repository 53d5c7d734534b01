package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/entities"
)

type turmaRequest struct {
	NomeTurma   string `json:"nome_turma"`
	IDProfessor int    `json:"id_professor"`
	Horario     string `json:"horario"`
}

func (r *turmaRequest) toEntity() (*entities.Turma, string) {
	if r.NomeTurma == "" {
		return nil, "nome_turma is required"
	}
	if r.IDProfessor <= 0 {
		return nil, "id_professor is required"
	}
	return &entities.Turma{
		NomeTurma:   SanitizeString(r.NomeTurma),
		IDProfessor: r.IDProfessor,
		Horario:     SanitizeString(r.Horario),
	}, ""
}

func (h *Handler) ListTurmas(c *gin.Context) {
	turmas, err := h.turmas.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, turmas)
}

func (h *Handler) GetTurma(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	turma, err := h.turmas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if turma == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "turma not found"})
		return
	}
	c.JSON(http.StatusOK, turma)
}

func (h *Handler) CreateTurma(c *gin.Context) {
	var req turmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	turma, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.turmas.Create(turma); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, turma)
}

func (h *Handler) UpdateTurma(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.turmas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "turma not found"})
		return
	}

	var req turmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	turma, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	turma.ID = id
	if err := h.turmas.Update(turma); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, turma)
}

func (h *Handler) DeleteTurma(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.turmas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "turma not found"})
		return
	}
	if err := h.turmas.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) ListAlunosDaTurma(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	turma, err := h.turmas.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if turma == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "turma not found"})
		return
	}
	alunos, err := h.alunos.ListByTurma(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id_turma":   turma.ID,
		"nome_turma": turma.NomeTurma,
		"alunos":     alunos,
	})
}
