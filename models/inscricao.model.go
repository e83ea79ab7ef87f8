package models

import "time"

// Inscricao links a pessoa to a curso. The (pessoa_id, curso_id) pair is
// unique regardless of the ativo flag; the index backs the service-level
// duplicate check when two creations race.
type Inscricao struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PessoaID  uint      `json:"pessoaId" gorm:"uniqueIndex:idx_pessoa_curso;not null"`
	CursoID   uint      `json:"cursoId" gorm:"uniqueIndex:idx_pessoa_curso;not null"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	Nota      *float64  `json:"nota"` // 0 to 10, up to two decimal places
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Inactive inscricoes go with their pessoa/curso; active ones block the
	// delete at the service layer before the constraint is ever reached.
	Pessoa *Pessoa `json:"-" gorm:"foreignKey:PessoaID;constraint:OnDelete:CASCADE"`
	Curso  *Curso  `json:"-" gorm:"foreignKey:CursoID;constraint:OnDelete:CASCADE"`
}
