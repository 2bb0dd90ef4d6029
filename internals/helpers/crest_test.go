package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCrestFileName(t *testing.T) {
	id := uuid.MustParse("2a9c36a7-8fbb-4f22-9f7f-111111111111")

	t.Run("full locality", func(t *testing.T) {
		got := CrestFileName("instituicao", "Guaíra", "SP", id)
		assert.Equal(t, "brasoes/brasao_instituicao_guaira_sp.webp", got)
	})

	t.Run("municipality crest kind", func(t *testing.T) {
		got := CrestFileName("municipio", "São Paulo", "SP", id)
		assert.Equal(t, "brasoes/brasao_municipio_sao-paulo_sp.webp", got)
	})

	t.Run("missing municipality falls back to id", func(t *testing.T) {
		got := CrestFileName("instituicao", "", "SP", id)
		assert.Contains(t, got, id.String())
	})

	t.Run("missing uf falls back to id", func(t *testing.T) {
		got := CrestFileName("instituicao", "Guaíra", "", id)
		assert.Contains(t, got, id.String())
	})
}
