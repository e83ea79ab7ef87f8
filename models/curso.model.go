package models

import "time"

// Curso represents a course offered to pessoas
type Curso struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Nome         string      `json:"nome" gorm:"uniqueIndex;not null"`
	Descricao    string      `json:"descricao"`
	CargaHoraria int         `json:"carga_horaria" gorm:"not null"` // workload in hours
	DataInicio   time.Time   `json:"data_inicio" gorm:"not null"`
	DataFim      time.Time   `json:"data_fim" gorm:"not null"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Inscricoes   []Inscricao `json:"inscricoes,omitempty" gorm:"foreignKey:CursoID"`
}
