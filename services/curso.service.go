package services

import (
	"errors"
	"fmt"
	"time"

	"academia/models"

	"gorm.io/gorm"
)

type CreateCursoInput struct {
	Nome         string
	Descricao    string
	CargaHoraria int
	DataInicio   time.Time
	DataFim      time.Time
}

type UpdateCursoInput struct {
	Nome         *string
	Descricao    *string
	CargaHoraria *int
	DataInicio   *time.Time
	DataFim      *time.Time
}

// CursoService sequences the store reads and guard clauses for cursos
type CursoService struct {
	db *gorm.DB
}

func NewCursoService(db *gorm.DB) *CursoService {
	return &CursoService{db: db}
}

// List returns cursos ordered by start date, newest first. A non-empty
// nomeFilter narrows the result to a case-insensitive substring match.
func (s *CursoService) List(nomeFilter string) ([]models.Curso, error) {
	query := s.db.Order("data_inicio desc")
	if nomeFilter != "" {
		query = query.Where("LOWER(nome) LIKE LOWER(?)", "%"+nomeFilter+"%")
	}

	var cursos []models.Curso
	if err := query.Find(&cursos).Error; err != nil {
		return nil, Internal(err)
	}
	return cursos, nil
}

// Get returns a curso with its inscricoes preloaded
func (s *CursoService) Get(id uint) (*models.Curso, error) {
	var curso models.Curso
	if err := s.db.Preload("Inscricoes").First(&curso, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Curso com ID %d não encontrado.", id))
		}
		return nil, Internal(err)
	}
	return &curso, nil
}

// Create inserts a curso after checking name uniqueness
func (s *CursoService) Create(data CreateCursoInput) (*models.Curso, error) {
	var existing models.Curso
	err := s.db.Where("nome = ?", data.Nome).First(&existing).Error
	if err == nil {
		return nil, Conflict("Já existe um curso com esse nome.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Internal(err)
	}

	curso := models.Curso{
		Nome:         data.Nome,
		Descricao:    data.Descricao,
		CargaHoraria: data.CargaHoraria,
		DataInicio:   data.DataInicio,
		DataFim:      data.DataFim,
	}
	if err := s.db.Create(&curso).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Já existe um curso com esse nome.")
		}
		return nil, Internal(err)
	}
	return &curso, nil
}

// Update applies the supplied fields; the name-uniqueness check only runs
// when the nome actually changes
func (s *CursoService) Update(id uint, data UpdateCursoInput) (*models.Curso, error) {
	var curso models.Curso
	if err := s.db.First(&curso, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Curso com ID %d não encontrado.", id))
		}
		return nil, Internal(err)
	}

	if data.Nome != nil && *data.Nome != curso.Nome {
		var other models.Curso
		err := s.db.Where("nome = ? AND id <> ?", *data.Nome, id).First(&other).Error
		if err == nil {
			return nil, Conflict("Já existe outro curso com esse nome.")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Internal(err)
		}
	}

	updates := map[string]interface{}{}
	if data.Nome != nil {
		updates["nome"] = *data.Nome
	}
	if data.Descricao != nil {
		updates["descricao"] = *data.Descricao
	}
	if data.CargaHoraria != nil {
		updates["carga_horaria"] = *data.CargaHoraria
	}
	if data.DataInicio != nil {
		updates["data_inicio"] = *data.DataInicio
	}
	if data.DataFim != nil {
		updates["data_fim"] = *data.DataFim
	}

	if len(updates) > 0 {
		if err := s.db.Model(&curso).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, Conflict("Já existe outro curso com esse nome.")
			}
			return nil, Internal(err)
		}
	}
	return &curso, nil
}

// Delete removes a curso unless it still has active inscricoes
func (s *CursoService) Delete(id uint) error {
	var curso models.Curso
	if err := s.db.First(&curso, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(fmt.Sprintf("Curso com ID %d não encontrado.", id))
		}
		return Internal(err)
	}

	var ativas int64
	if err := s.db.Model(&models.Inscricao{}).
		Where("curso_id = ? AND ativo = ?", id, true).
		Count(&ativas).Error; err != nil {
		return Internal(err)
	}
	if ativas > 0 {
		return Conflict("Não é possível deletar o curso, existem inscrições ativas.")
	}

	if err := s.db.Delete(&curso).Error; err != nil {
		return Internal(err)
	}
	return nil
}
