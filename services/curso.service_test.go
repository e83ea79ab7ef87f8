package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursoInput(nome string, inicio time.Time) CreateCursoInput {
	return CreateCursoInput{
		Nome:         nome,
		Descricao:    "descrição de " + nome,
		CargaHoraria: 40,
		DataInicio:   inicio,
		DataFim:      inicio.AddDate(0, 2, 0),
	}
}

func TestCursoCreate(t *testing.T) {
	db := setupTestDB(t)
	s := NewCursoService(db)

	curso, err := s.Create(cursoInput("Introdução a Go", time.Now()))
	require.NoError(t, err)
	assert.NotZero(t, curso.ID)

	_, err = s.Create(cursoInput("Introdução a Go", time.Now()))
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "Já existe um curso com esse nome.")
}

func TestCursoListFilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	s := NewCursoService(db)

	agora := time.Now()
	criarCurso(t, s, cursoInput("Banco de Dados", agora.AddDate(0, -1, 0)))
	criarCurso(t, s, cursoInput("Go Avançado", agora))
	criarCurso(t, s, cursoInput("go básico", agora.AddDate(0, 1, 0)))

	// no filter: everything, data_inicio desc
	cursos, err := s.List("")
	require.NoError(t, err)
	require.Len(t, cursos, 3)
	assert.Equal(t, "go básico", cursos[0].Nome)
	assert.Equal(t, "Banco de Dados", cursos[2].Nome)

	// case-insensitive substring
	cursos, err = s.List("GO")
	require.NoError(t, err)
	require.Len(t, cursos, 2)
	assert.Equal(t, "go básico", cursos[0].Nome)
	assert.Equal(t, "Go Avançado", cursos[1].Nome)
}

func TestCursoGetIncludesInscricoes(t *testing.T) {
	db := setupTestDB(t)
	s := NewCursoService(db)
	pessoas := NewPessoaService(db)
	inscricoes := NewInscricaoService(db)

	curso := criarCurso(t, s, cursoInput("Introdução a Go", time.Now()))
	pessoa := criarPessoa(t, pessoas, "Ana", "ana@example.com", "12345678901")
	_, err := inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	fetched, err := s.Get(curso.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Inscricoes, 1)
	assert.Equal(t, pessoa.ID, fetched.Inscricoes[0].PessoaID)

	_, err = s.Get(999)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCursoUpdate(t *testing.T) {
	db := setupTestDB(t)
	s := NewCursoService(db)

	curso := criarCurso(t, s, cursoInput("Introdução a Go", time.Now()))
	criarCurso(t, s, cursoInput("Banco de Dados", time.Now()))

	// renaming onto an existing curso is a conflict
	ocupado := "Banco de Dados"
	_, err := s.Update(curso.ID, UpdateCursoInput{Nome: &ocupado})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "Já existe outro curso com esse nome.")

	// re-sending the current name skips the uniqueness check
	mesmo := "Introdução a Go"
	novaCarga := 80
	updated, err := s.Update(curso.ID, UpdateCursoInput{Nome: &mesmo, CargaHoraria: &novaCarga})
	require.NoError(t, err)
	assert.Equal(t, 80, updated.CargaHoraria)

	_, err = s.Update(999, UpdateCursoInput{Nome: &mesmo})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCursoDeleteGuardedByActiveInscricoes(t *testing.T) {
	db := setupTestDB(t)
	s := NewCursoService(db)
	pessoas := NewPessoaService(db)
	inscricoes := NewInscricaoService(db)

	curso := criarCurso(t, s, cursoInput("Introdução a Go", time.Now()))
	pessoa := criarPessoa(t, pessoas, "Ana", "ana@example.com", "12345678901")
	inscricao, err := inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	err = s.Delete(curso.ID)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "Não é possível deletar o curso, existem inscrições ativas.")

	inativo := false
	_, err = inscricoes.Update(inscricao.ID, UpdateInscricaoInput{Ativo: &inativo})
	require.NoError(t, err)

	require.NoError(t, s.Delete(curso.ID))
}
