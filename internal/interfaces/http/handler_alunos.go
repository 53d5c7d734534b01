package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/usecases"
)

type alunoRequest struct {
	NomeCompleto          string `json:"nome_completo"`
	DataNascimento        string `json:"data_nascimento"`
	IDTurma               int    `json:"id_turma"`
	NomeResponsavel       string `json:"nome_responsavel"`
	TelefoneResponsavel   string `json:"telefone_responsavel"`
	EmailResponsavel      string `json:"email_responsavel"`
	InformacoesAdicionais string `json:"informacoes_adicionais"`
}

func (r *alunoRequest) toEntity() (*entities.Aluno, string) {
	if r.NomeCompleto == "" || !ValidateLength(r.NomeCompleto, 1, MaxNomeLength) {
		return nil, "nome_completo is required"
	}
	if r.IDTurma <= 0 {
		return nil, "id_turma is required"
	}
	if r.NomeResponsavel == "" {
		return nil, "nome_responsavel is required"
	}
	if !ValidEmail(r.EmailResponsavel) {
		return nil, "email_responsavel is invalid"
	}
	nascimento, err := ParseData(r.DataNascimento)
	if err != nil {
		return nil, "data_nascimento must be YYYY-MM-DD"
	}
	return &entities.Aluno{
		NomeCompleto:          SanitizeString(r.NomeCompleto),
		DataNascimento:        nascimento,
		IDTurma:               r.IDTurma,
		NomeResponsavel:       SanitizeString(r.NomeResponsavel),
		TelefoneResponsavel:   SanitizeString(r.TelefoneResponsavel),
		EmailResponsavel:      r.EmailResponsavel,
		InformacoesAdicionais: SanitizeString(r.InformacoesAdicionais),
	}, ""
}

func (h *Handler) ListAlunos(c *gin.Context) {
	alunos, err := h.alunos.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alunos)
}

func (h *Handler) GetAluno(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	aluno, err := h.alunos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if aluno == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "aluno not found"})
		return
	}
	c.JSON(http.StatusOK, aluno)
}

func (h *Handler) CreateAluno(c *gin.Context) {
	var req alunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	aluno, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.alunos.Create(aluno); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, aluno)
}

func (h *Handler) UpdateAluno(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.alunos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "aluno not found"})
		return
	}

	var req alunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	aluno, msg := req.toEntity()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	aluno.ID = id
	if err := h.alunos.Update(aluno); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aluno)
}

func (h *Handler) DeleteAluno(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	existing, err := h.alunos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "aluno not found"})
		return
	}
	if err := h.alunos.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetAlunoPresencas summarizes one student's attendance, optionally within a
// period given by ?inicio=&fim= (ISO dates).
func (h *Handler) GetAlunoPresencas(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	aluno, err := h.alunos.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if aluno == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "aluno not found"})
		return
	}

	var presencas []entities.Presenca
	if c.Query("inicio") != "" || c.Query("fim") != "" {
		inicio, err1 := ParseData(c.Query("inicio"))
		fim, err2 := ParseData(c.Query("fim"))
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inicio and fim must be YYYY-MM-DD"})
			return
		}
		presencas, err = h.presencas.ListByAlunoPeriodo(id, inicio, fim)
	} else {
		presencas, err = h.presencas.ListByAluno(id)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	presentes := 0
	for _, p := range presencas {
		if p.Presente {
			presentes++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"id_aluno":      id,
		"nome_completo": aluno.NomeCompleto,
		"presencas":     presencas,
		"dias_presente": presentes,
		"total_dias":    len(presencas),
		"percentual":    usecases.Percentual(presentes, len(presencas)),
	})
}
