package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, PT, Resolve("pt"))
	assert.Equal(t, EN, Resolve("en"))
	assert.Equal(t, FR, Resolve("fr"))
	assert.Equal(t, EN, Resolve(" EN "))

	// unknown or empty segments fall back to the default
	assert.Equal(t, Default, Resolve("de"))
	assert.Equal(t, Default, Resolve(""))
	assert.Equal(t, Default, Resolve("pt-BR"))
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"pt-PT,pt;q=0.9,en;q=0.8", PT},
		{"en-US,en;q=0.5", EN},
		{"fr", FR},
		{"fr;q=0.9", FR},
		{"de-DE,de;q=0.9", Default},
		{"", Default},
		{"*", Default},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromAcceptLanguage(tt.header), "header %q", tt.header)
	}
}

func TestTextGetFallsBack(t *testing.T) {
	txt := Text{PT: "Olá", EN: "Hello"}

	assert.Equal(t, "Hello", txt.Get(EN))
	assert.Equal(t, "Olá", txt.Get(PT))

	// missing locale falls back to default, never errors
	assert.Equal(t, "Olá", txt.Get(FR))

	empty := Text{}
	assert.Equal(t, "", empty.Get(EN))

	// empty string counts as missing
	blank := Text{PT: "Olá", FR: ""}
	assert.Equal(t, "Olá", blank.Get(FR))
}

func TestTextScanValueRoundTrip(t *testing.T) {
	var txt Text
	err := txt.Scan([]byte(`{"pt":"Projetos","en":"Projects"}`))
	assert.NoError(t, err)
	assert.Equal(t, "Projetos", txt.Get(PT))
	assert.Equal(t, "Projects", txt.Get(EN))

	v, err := txt.Value()
	assert.NoError(t, err)
	assert.NotEmpty(t, v)

	var nilText Text
	err = nilText.Scan(nil)
	assert.NoError(t, err)
	assert.True(t, nilText.IsEmpty())
}
