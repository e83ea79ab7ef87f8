package main

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// Seeds demo data through the public REST API, the same surface the
// frontend consumes. Run against a live server:
//
//	API_URL=http://localhost:3000 go run scripts/seed.go
type pessoaSeed struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type cursoSeed struct {
	Nome         string `json:"nome"`
	Descricao    string `json:"descricao,omitempty"`
	CargaHoraria int    `json:"carga_horaria"`
	DataInicio   string `json:"data_inicio"`
	DataFim      string `json:"data_fim"`
}

type inscricaoSeed struct {
	PessoaID uint `json:"pessoaId"`
	CursoID  uint `json:"cursoId"`
}

type created struct {
	ID uint `json:"id"`
}

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	pessoas := []pessoaSeed{
		{Nome: "Ana Souza", Email: "ana.souza@example.com", CPF: "39053344705"},
		{Nome: "Bruno Lima", Email: "bruno.lima@example.com", CPF: "12345678901"},
		{Nome: "Carla Mendes", Email: "carla.mendes@example.com", CPF: "98765432100"},
	}

	inicio := time.Now().AddDate(0, 1, 0).UTC().Truncate(24 * time.Hour)
	cursos := []cursoSeed{
		{
			Nome:         "Introdução a Go",
			Descricao:    "Fundamentos da linguagem Go",
			CargaHoraria: 40,
			DataInicio:   inicio.Format(time.RFC3339),
			DataFim:      inicio.AddDate(0, 2, 0).Format(time.RFC3339),
		},
		{
			Nome:         "Banco de Dados Relacional",
			CargaHoraria: 60,
			DataInicio:   inicio.AddDate(0, 0, 15).Format(time.RFC3339),
			DataFim:      inicio.AddDate(0, 3, 0).Format(time.RFC3339),
		},
	}

	var pessoaIDs []uint
	for _, pessoa := range pessoas {
		var result created
		resp, err := client.R().SetBody(pessoa).SetResult(&result).Post("/pessoas")
		if err != nil {
			log.Fatalf("Failed to create pessoa %q: %v", pessoa.Nome, err)
		}
		if resp.IsError() {
			log.Printf("Skipping pessoa %q: %s %s", pessoa.Nome, resp.Status(), resp.String())
			continue
		}
		log.Printf("Created pessoa %q (id=%d)", pessoa.Nome, result.ID)
		pessoaIDs = append(pessoaIDs, result.ID)
	}

	var cursoIDs []uint
	for _, curso := range cursos {
		var result created
		resp, err := client.R().SetBody(curso).SetResult(&result).Post("/cursos")
		if err != nil {
			log.Fatalf("Failed to create curso %q: %v", curso.Nome, err)
		}
		if resp.IsError() {
			log.Printf("Skipping curso %q: %s %s", curso.Nome, resp.Status(), resp.String())
			continue
		}
		log.Printf("Created curso %q (id=%d)", curso.Nome, result.ID)
		cursoIDs = append(cursoIDs, result.ID)
	}

	enrolled := 0
	for _, pessoaID := range pessoaIDs {
		for _, cursoID := range cursoIDs {
			resp, err := client.R().
				SetBody(inscricaoSeed{PessoaID: pessoaID, CursoID: cursoID}).
				Post("/inscricoes")
			if err != nil {
				log.Fatalf("Failed to create inscricao (pessoa=%d curso=%d): %v", pessoaID, cursoID, err)
			}
			if resp.IsError() {
				log.Printf("Skipping inscricao (pessoa=%d curso=%d): %s", pessoaID, cursoID, resp.Status())
				continue
			}
			enrolled++
		}
	}

	log.Printf("Seed finished: %d pessoas, %d cursos, %d inscricoes", len(pessoaIDs), len(cursoIDs), enrolled)
}
