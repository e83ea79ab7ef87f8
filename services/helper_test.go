package services

import (
	"fmt"
	"testing"

	"academia/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database migrated with the three
// models. cache=shared keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Pessoa{},
		&models.Curso{},
		&models.Inscricao{},
	))
	return db
}

func criarPessoa(t *testing.T, s *PessoaService, nome, email, cpf string) *models.Pessoa {
	t.Helper()
	pessoa, err := s.Create(CreatePessoaInput{Nome: nome, Email: email, CPF: cpf})
	require.NoError(t, err)
	return pessoa
}

func criarCurso(t *testing.T, s *CursoService, data CreateCursoInput) *models.Curso {
	t.Helper()
	curso, err := s.Create(data)
	require.NoError(t, err)
	return curso
}
