package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	snapshotIDLength = 10
)

// NewSnapshotID gera o identificador de uma carga de planilha, prefixado pelo schema
func NewSnapshotID(schema string) (string, error) {
	id, err := gonanoid.Generate(characters, snapshotIDLength)
	if err != nil {
		return "", err
	}
	if schema == "" {
		return id, nil
	}
	return schema + "-" + id, nil
}
