package services

import (
	"testing"
	"time"

	"academia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type inscricaoFixture struct {
	pessoas    *PessoaService
	cursos     *CursoService
	inscricoes *InscricaoService
}

func newInscricaoFixture(t *testing.T) inscricaoFixture {
	db := setupTestDB(t)
	return inscricaoFixture{
		pessoas:    NewPessoaService(db),
		cursos:     NewCursoService(db),
		inscricoes: NewInscricaoService(db),
	}
}

func TestInscricaoCreate(t *testing.T) {
	f := newInscricaoFixture(t)

	pessoa := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	curso := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))

	inscricao, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)
	assert.NotZero(t, inscricao.ID)
	assert.True(t, inscricao.Ativo)
	assert.Nil(t, inscricao.Nota)
}

func TestInscricaoCreateGuardOrder(t *testing.T) {
	f := newInscricaoFixture(t)

	pessoa := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	curso := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))

	// missing pessoa is reported before the (also missing) curso
	_, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: 999, CursoID: 888})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "Pessoa não encontrada.")

	_, err = f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: 888})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "Curso não encontrado.")

	_, err = f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	_, err = f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "Esta pessoa já está inscrita neste curso.")
}

func TestInscricaoPairUniqueEvenWhenInactive(t *testing.T) {
	f := newInscricaoFixture(t)

	pessoa := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	curso := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))

	inscricao, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	inativo := false
	_, err = f.inscricoes.Update(inscricao.ID, UpdateInscricaoInput{Ativo: &inativo})
	require.NoError(t, err)

	// the pair stays taken regardless of the ativo flag
	_, err = f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestInscricaoPairUniqueIndexBackstop(t *testing.T) {
	f := newInscricaoFixture(t)
	db := f.inscricoes.db

	pessoa := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	curso := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))

	_, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	// the losing write of two concurrent enrollments bypasses the
	// existence check and lands on the (pessoa_id, curso_id) unique
	// index; TranslateError turns it into gorm.ErrDuplicatedKey, which
	// Create surfaces as the same "já está inscrita" conflict
	err = db.Create(&models.Inscricao{
		PessoaID: pessoa.ID,
		CursoID:  curso.ID,
		Ativo:    true,
	}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestInscricaoUpdate(t *testing.T) {
	f := newInscricaoFixture(t)

	pessoa := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	curso := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))
	inscricao, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	nota := 9.5
	updated, err := f.inscricoes.Update(inscricao.ID, UpdateInscricaoInput{Nota: &nota})
	require.NoError(t, err)
	require.NotNil(t, updated.Nota)
	assert.Equal(t, 9.5, *updated.Nota)
	assert.True(t, updated.Ativo)

	inativo := false
	updated, err = f.inscricoes.Update(inscricao.ID, UpdateInscricaoInput{Ativo: &inativo})
	require.NoError(t, err)
	assert.False(t, updated.Ativo)
	require.NotNil(t, updated.Nota) // nota untouched by an ativo-only update
	assert.Equal(t, 9.5, *updated.Nota)

	_, err = f.inscricoes.Update(999, UpdateInscricaoInput{Ativo: &inativo})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "Inscrição com ID 999 não encontrada.")
}

func TestInscricaoDelete(t *testing.T) {
	f := newInscricaoFixture(t)

	pessoa := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	curso := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))
	inscricao, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: pessoa.ID, CursoID: curso.ID})
	require.NoError(t, err)

	require.NoError(t, f.inscricoes.Delete(inscricao.ID))

	err = f.inscricoes.Delete(inscricao.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestInscricaoListFiltersAndSummaries(t *testing.T) {
	f := newInscricaoFixture(t)

	ana := criarPessoa(t, f.pessoas, "Ana", "ana@example.com", "12345678901")
	beto := criarPessoa(t, f.pessoas, "Beto", "beto@example.com", "98765432100")
	golang := criarCurso(t, f.cursos, cursoInput("Introdução a Go", time.Now()))
	sql := criarCurso(t, f.cursos, cursoInput("Banco de Dados", time.Now()))

	primeira, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: ana.ID, CursoID: golang.ID})
	require.NoError(t, err)
	_, err = f.inscricoes.Create(CreateInscricaoInput{PessoaID: beto.ID, CursoID: golang.ID})
	require.NoError(t, err)
	segunda, err := f.inscricoes.Create(CreateInscricaoInput{PessoaID: ana.ID, CursoID: sql.ID})
	require.NoError(t, err)

	inativo := false
	_, err = f.inscricoes.Update(segunda.ID, UpdateInscricaoInput{Ativo: &inativo})
	require.NoError(t, err)

	// no filter: everything, oldest first, with summaries
	todas, err := f.inscricoes.List(ListInscricoesFilter{})
	require.NoError(t, err)
	require.Len(t, todas, 3)
	assert.Equal(t, primeira.ID, todas[0].ID)
	assert.Equal(t, "Ana", todas[0].Pessoa.Nome)
	assert.Equal(t, "ana@example.com", todas[0].Pessoa.Email)
	assert.Equal(t, "Introdução a Go", todas[0].Curso.Nome)

	// ativo + curso narrow together, pessoa unconstrained
	ativas := true
	filtradas, err := f.inscricoes.List(ListInscricoesFilter{Ativo: &ativas, CursoID: &golang.ID})
	require.NoError(t, err)
	require.Len(t, filtradas, 2)
	for _, inscricao := range filtradas {
		assert.True(t, inscricao.Ativo)
		assert.Equal(t, golang.ID, inscricao.CursoID)
	}

	// pessoa filter
	minhas, err := f.inscricoes.List(ListInscricoesFilter{PessoaID: &ana.ID})
	require.NoError(t, err)
	assert.Len(t, minhas, 2)
}
