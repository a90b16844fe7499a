package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Novo Projeto Incrível!", "novo-projeto-incrivel"},
		{"Café & Co.", "cafe-co"},
		{"Hello World", "hello-world"},
		{"  --Weird   Input--  ", "weird-input"},
		{"Déjà Vu", "deja-vu"},
		{"UPPER lower 123", "upper-lower-123"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input), "input %q", tt.input)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{"Novo Projeto Incrível!", "Café & Co.", "already-a-slug"}
	for _, in := range inputs {
		once := GenerateSlug(in)
		assert.Equal(t, once, GenerateSlug(once))
	}
}

func TestGenerateSlugCharset(t *testing.T) {
	slug := GenerateSlug("Stränge — Títle with * chars (2024)")
	for _, r := range slug {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, valid, "unexpected rune %q in slug %q", r, slug)
	}
	assert.NotEmpty(t, slug)
	assert.NotContains(t, slug, "--")
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Incrivel", RemoveDiacritics("Incrível"))
	assert.Equal(t, "Jose", RemoveDiacritics("José"))
	assert.Equal(t, "aeiou", RemoveDiacritics("áêìõü"))
}
