package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/entities"
)

type professorRequest struct {
	NomeCompleto string `json:"nome_completo"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
}

func (r *professorRequest) toEntity() (*entities.Professor, string) {
	if r.NomeCompleto == "" || !ValidateLength(r.NomeCompleto, 1, MaxNomeLength) {
		return nil, "nome_completo is required"
	}
	if !ValidEmail(r.Email) {
		return nil, "email is invalid"
	}
	return &entities.Professor{
		NomeCompleto: SanitizeString(r.NomeCompleto),
		Email:        r.Email,
		Telefone:     SanitizeString(r.Telefone),
	}, ""
}

func (h *Handler) ListProfessores(c *gin.Context) {
	professores, err := h.professores.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, professores)
}

func (h *Handler) GetProfessor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	professor, err := h.professores.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if professor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professor not found"})
		return
	}
	c.JSON(http.StatusOK, professor)
}

func (h *Handler) CreateProfessor(c *gin.Context) {
	var req professorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	professor, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.professores.Create(professor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, professor)
}

func (h *Handler) UpdateProfessor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.professores.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professor not found"})
		return
	}

	var req professorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	professor, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	professor.ID = id
	if err := h.professores.Update(professor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, professor)
}

func (h *Handler) DeleteProfessor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.professores.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professor not found"})
		return
	}
	if err := h.professores.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
