package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComposeGeneratedName(t *testing.T) {
	got := ComposeGeneratedName("Guarda Civil Municipal", "Guaíra", "SP")
	assert.Equal(t, "Guarda Civil Municipal - Guaíra-SP", got)
}

func TestPlaceholderName(t *testing.T) {
	id := uuid.MustParse("2a9c36a7-8fbb-4f22-9f7f-111111111111")
	assert.Equal(t, "Instituicao 2a9c36a7", PlaceholderName(id))
}
