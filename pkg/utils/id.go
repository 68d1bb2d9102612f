package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem caracteres especiais para IDs usados em nomes de arquivo
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para backups e artefatos nomeados
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 8)
}
