package models

import "time"

// Pessoa represents a person that can enroll in courses
type Pessoa struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CPF       string    `json:"cpf" gorm:"uniqueIndex;not null;size:11"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
