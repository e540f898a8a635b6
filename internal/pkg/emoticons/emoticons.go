// Package emoticons counts known emoticons in free text.
package emoticons

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed emoticons.yaml
var defaultData []byte

type libraryFile struct {
	Emoticons []string `yaml:"emoticons"`
	Ignore    []string `yaml:"ignore"`
}

// Library is a set of known emoticons with the ignore list already removed.
type Library struct {
	known  map[string]struct{}
	maxLen int
}

// New builds a Library from the known emoticons minus the ignored ones.
func New(emoticons, ignore []string) *Library {
	skip := make(map[string]struct{}, len(ignore))
	for _, e := range ignore {
		skip[e] = struct{}{}
	}

	lib := &Library{known: make(map[string]struct{}, len(emoticons))}
	for _, e := range emoticons {
		if e == "" {
			continue
		}
		if _, ignored := skip[e]; ignored {
			continue
		}
		lib.known[e] = struct{}{}
		if len(e) > lib.maxLen {
			lib.maxLen = len(e)
		}
	}
	return lib
}

// Load reads a YAML library with `emoticons` and `ignore` lists.
func Load(r io.Reader) (*Library, error) {
	var f libraryFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse emoticons yaml: %w", err)
	}
	return New(f.Emoticons, f.Ignore), nil
}

func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emoticons file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the library embedded in the binary.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := Load(bytes.NewReader(defaultData))
		if err != nil {
			panic(fmt.Sprintf("embedded emoticons library: %v", err))
		}
		defaultLib = lib
	})
	return defaultLib
}

func (l *Library) Len() int {
	return len(l.known)
}

func (l *Library) Contains(token string) bool {
	_, ok := l.known[token]
	return ok
}

// MatchAt returns the byte length of the longest known emoticon starting at
// text[i], or 0 when none starts there.
func (l *Library) MatchAt(text string, i int) int {
	for n := l.maxLen; n > 0; n-- {
		if i+n > len(text) {
			continue
		}
		if _, ok := l.known[text[i:i+n]]; ok {
			return n
		}
	}
	return 0
}

// CountEmoticons counts the known emoticons in text, scanning left to right
// and taking the longest match at each position.
func CountEmoticons(text string, lib *Library) int {
	if lib == nil || lib.maxLen == 0 {
		return 0
	}

	count := 0
	for i := 0; i < len(text); {
		if n := lib.MatchAt(text, i); n > 0 {
			count++
			i += n
			continue
		}
		i++
	}
	return count
}
