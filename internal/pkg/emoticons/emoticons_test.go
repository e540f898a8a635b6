package emoticons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountEmoticons(t *testing.T) {
	lib := Default()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain text", "plain text", 0},
		{"empty", "", 0},
		{"single smiley", "smiley :-)", 1},
		{"two distinct", "happy :-) but also sad :(", 2},
		{"repeated", ":) :) :)", 3},
		{"longest match wins", "so funny :-))", 1},
		{"ignored prefix", "ratio 3:- 4", 0},
		{"ignored entry", "^^ nope", 0},
		{"heart", "i <3 scratch", 1},
		{"adjacent", ":(:)", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountEmoticons(tt.text, lib))
		})
	}
}

func TestCountEmoticons_NilLibrary(t *testing.T) {
	assert.Equal(t, 0, CountEmoticons(":-)", nil))
}

func TestLoad(t *testing.T) {
	lib, err := Load(strings.NewReader(`
emoticons: [":)", ":-", "xo"]
ignore: [":-"]
`))
	require.NoError(t, err)

	assert.Equal(t, 2, lib.Len())
	assert.True(t, lib.Contains(":)"))
	assert.False(t, lib.Contains(":-"))
	assert.Equal(t, 2, CountEmoticons("xo :)", lib))
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("emoticons: [unterminated"))
	assert.Error(t, err)
}

func TestDefault_ExcludesIgnored(t *testing.T) {
	lib := Default()
	assert.False(t, lib.Contains(":-"))
	assert.True(t, lib.Contains(":-)"))
}
