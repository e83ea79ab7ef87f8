package services

import (
	"errors"
	"fmt"

	"academia/models"

	"gorm.io/gorm"
)

// CreatePessoaInput is the payload accepted after schema validation
type CreatePessoaInput struct {
	Nome  string
	Email string
	CPF   string
}

// UpdatePessoaInput carries only the fields present in the request body
type UpdatePessoaInput struct {
	Nome  *string
	Email *string
	CPF   *string
}

// PessoaService sequences the store reads and guard clauses for pessoas
type PessoaService struct {
	db *gorm.DB
}

func NewPessoaService(db *gorm.DB) *PessoaService {
	return &PessoaService{db: db}
}

// List returns all pessoas, newest first
func (s *PessoaService) List() ([]models.Pessoa, error) {
	var pessoas []models.Pessoa
	if err := s.db.Order("created_at desc").Find(&pessoas).Error; err != nil {
		return nil, Internal(err)
	}
	return pessoas, nil
}

func (s *PessoaService) Get(id uint) (*models.Pessoa, error) {
	var pessoa models.Pessoa
	if err := s.db.First(&pessoa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Pessoa com ID %d não encontrada.", id))
		}
		return nil, Internal(err)
	}
	return &pessoa, nil
}

// Create inserts a pessoa after checking email and CPF uniqueness.
// Email is checked before CPF so the reported conflict is deterministic.
func (s *PessoaService) Create(data CreatePessoaInput) (*models.Pessoa, error) {
	var existing models.Pessoa
	err := s.db.Where("email = ? OR cpf = ?", data.Email, data.CPF).First(&existing).Error
	if err == nil {
		if existing.Email == data.Email {
			return nil, Conflict("Email já cadastrado.")
		}
		return nil, Conflict("CPF já cadastrado.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Internal(err)
	}

	pessoa := models.Pessoa{
		Nome:  data.Nome,
		Email: data.Email,
		CPF:   data.CPF,
	}
	if err := s.db.Create(&pessoa).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a check-then-write race; the unique index is the backstop
			return nil, Conflict("Email ou CPF já cadastrado.")
		}
		return nil, Internal(err)
	}
	return &pessoa, nil
}

// Update applies the supplied fields, re-checking email/CPF uniqueness
// against every other pessoa when either is changing
func (s *PessoaService) Update(id uint, data UpdatePessoaInput) (*models.Pessoa, error) {
	pessoa, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Email != nil || data.CPF != nil {
		email := pessoa.Email
		if data.Email != nil {
			email = *data.Email
		}
		cpf := pessoa.CPF
		if data.CPF != nil {
			cpf = *data.CPF
		}

		var other models.Pessoa
		err := s.db.Where("id <> ? AND (email = ? OR cpf = ?)", id, email, cpf).First(&other).Error
		if err == nil {
			if other.Email == email {
				return nil, Conflict("Email já cadastrado.")
			}
			return nil, Conflict("CPF já cadastrado.")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Internal(err)
		}
	}

	updates := map[string]interface{}{}
	if data.Nome != nil {
		updates["nome"] = *data.Nome
	}
	if data.Email != nil {
		updates["email"] = *data.Email
	}
	if data.CPF != nil {
		updates["cpf"] = *data.CPF
	}

	if len(updates) > 0 {
		if err := s.db.Model(pessoa).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, Conflict("Email ou CPF já cadastrado.")
			}
			return nil, Internal(err)
		}
	}
	return pessoa, nil
}

// Delete removes a pessoa unless it still has active inscricoes
func (s *PessoaService) Delete(id uint) error {
	pessoa, err := s.Get(id)
	if err != nil {
		return err
	}

	var ativas int64
	if err := s.db.Model(&models.Inscricao{}).
		Where("pessoa_id = ? AND ativo = ?", id, true).
		Count(&ativas).Error; err != nil {
		return Internal(err)
	}
	if ativas > 0 {
		return Conflict("Não é possível deletar a pessoa pois ela possui inscrições ativas.")
	}

	if err := s.db.Delete(pessoa).Error; err != nil {
		return Internal(err)
	}
	return nil
}
