package services

import (
	"errors"
	"fmt"

	"academia/models"

	"gorm.io/gorm"
)

type CreateInscricaoInput struct {
	PessoaID uint
	CursoID  uint
}

type UpdateInscricaoInput struct {
	Ativo *bool
	Nota  *float64
}

// ListInscricoesFilter narrows the listing; nil fields match any value
type ListInscricoesFilter struct {
	Ativo    *bool
	CursoID  *uint
	PessoaID *uint
}

// PessoaResumo is the pessoa summary embedded in listing results
type PessoaResumo struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// CursoResumo is the curso summary embedded in listing results
type CursoResumo struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// InscricaoDetalhada is an inscricao with its related pessoa and curso
// summarized for the listing endpoint
type InscricaoDetalhada struct {
	models.Inscricao
	Pessoa PessoaResumo `json:"pessoa"`
	Curso  CursoResumo  `json:"curso"`
}

// InscricaoService sequences the referential guards for inscricoes
type InscricaoService struct {
	db *gorm.DB
}

func NewInscricaoService(db *gorm.DB) *InscricaoService {
	return &InscricaoService{db: db}
}

// List returns inscricoes matching the filter, oldest first, each with its
// pessoa and curso summaries
func (s *InscricaoService) List(filter ListInscricoesFilter) ([]InscricaoDetalhada, error) {
	query := s.db.Preload("Pessoa").Preload("Curso").Order("created_at asc")
	if filter.Ativo != nil {
		query = query.Where("ativo = ?", *filter.Ativo)
	}
	if filter.CursoID != nil {
		query = query.Where("curso_id = ?", *filter.CursoID)
	}
	if filter.PessoaID != nil {
		query = query.Where("pessoa_id = ?", *filter.PessoaID)
	}

	var inscricoes []models.Inscricao
	if err := query.Find(&inscricoes).Error; err != nil {
		return nil, Internal(err)
	}

	detalhadas := make([]InscricaoDetalhada, 0, len(inscricoes))
	for _, inscricao := range inscricoes {
		detalhada := InscricaoDetalhada{Inscricao: inscricao}
		if inscricao.Pessoa != nil {
			detalhada.Pessoa = PessoaResumo{
				ID:    inscricao.Pessoa.ID,
				Nome:  inscricao.Pessoa.Nome,
				Email: inscricao.Pessoa.Email,
			}
		}
		if inscricao.Curso != nil {
			detalhada.Curso = CursoResumo{
				ID:        inscricao.Curso.ID,
				Nome:      inscricao.Curso.Nome,
				Descricao: inscricao.Curso.Descricao,
			}
		}
		detalhadas = append(detalhadas, detalhada)
	}
	return detalhadas, nil
}

func (s *InscricaoService) Get(id uint) (*models.Inscricao, error) {
	var inscricao models.Inscricao
	if err := s.db.First(&inscricao, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Inscrição com ID %d não encontrada.", id))
		}
		return nil, Internal(err)
	}
	return &inscricao, nil
}

// Create inserts an inscricao after three ordered guards: the pessoa exists,
// the curso exists, and the (pessoa, curso) pair is not already enrolled.
// Missing referenced entities are conflicts, not not-founds: the inscricao
// id itself is not being addressed.
func (s *InscricaoService) Create(data CreateInscricaoInput) (*models.Inscricao, error) {
	var pessoa models.Pessoa
	if err := s.db.First(&pessoa, data.PessoaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Conflict("Pessoa não encontrada.")
		}
		return nil, Internal(err)
	}

	var curso models.Curso
	if err := s.db.First(&curso, data.CursoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Conflict("Curso não encontrado.")
		}
		return nil, Internal(err)
	}

	var existing models.Inscricao
	err := s.db.Where("pessoa_id = ? AND curso_id = ?", data.PessoaID, data.CursoID).
		First(&existing).Error
	if err == nil {
		return nil, Conflict("Esta pessoa já está inscrita neste curso.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Internal(err)
	}

	inscricao := models.Inscricao{
		PessoaID: data.PessoaID,
		CursoID:  data.CursoID,
		Ativo:    true,
	}
	if err := s.db.Create(&inscricao).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// two concurrent enrollments for the same pair; the unique
			// index caught the loser
			return nil, Conflict("Esta pessoa já está inscrita neste curso.")
		}
		return nil, Internal(err)
	}
	return &inscricao, nil
}

// Update applies only the supplied fields. Nota arrives already validated
// by the schema layer (0 to 10, two decimal places).
func (s *InscricaoService) Update(id uint, data UpdateInscricaoInput) (*models.Inscricao, error) {
	inscricao, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if data.Ativo != nil {
		updates["ativo"] = *data.Ativo
	}
	if data.Nota != nil {
		updates["nota"] = *data.Nota
	}

	if len(updates) > 0 {
		if err := s.db.Model(inscricao).Updates(updates).Error; err != nil {
			return nil, Internal(err)
		}
	}
	return inscricao, nil
}

// Delete removes the inscricao row; no cascading side effects
func (s *InscricaoService) Delete(id uint) error {
	inscricao, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(inscricao).Error; err != nil {
		return Internal(err)
	}
	return nil
}
