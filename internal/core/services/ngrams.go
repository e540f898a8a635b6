package services

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/pkg/emoticons"
)

// maxNGramLength is the longest n-gram reported.
const maxNGramLength = 3

type NgramService struct {
	projects   ports.ProjectRepository
	training   ports.TrainingRepository
	emoticons  *emoticons.Library
	maxResults int
}

func NewNgramService(projects ports.ProjectRepository, training ports.TrainingRepository, lib *emoticons.Library, maxResults int) *NgramService {
	if maxResults <= 0 {
		maxResults = 50
	}
	if lib == nil {
		lib = emoticons.Default()
	}
	return &NgramService{projects: projects, training: training, emoticons: lib, maxResults: maxResults}
}

// Analyse counts the 1-, 2- and 3-grams in a text project's training data.
func (s *NgramService) Analyse(ctx context.Context, owner domain.Owner, projectID uuid.UUID) (*domain.NGramAnalysis, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, owner, projectID)
	if err != nil {
		return nil, err
	}
	if project.Type != domain.ProjectTypeText {
		return nil, domain.ErrProjectTypeNotSupported
	}

	items, err := s.training.ListAll(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	counters := make(map[int]map[string]*domain.NGramCount, maxNGramLength)
	for n := 1; n <= maxNGramLength; n++ {
		counters[n] = make(map[string]*domain.NGramCount)
	}

	analysis := &domain.NGramAnalysis{
		ProjectName: project.Name,
		Items:       len(items),
		NGrams:      make(map[int][]domain.NGramCount, maxNGramLength),
	}

	for _, item := range items {
		analysis.Emoticons += emoticons.CountEmoticons(item.Data, s.emoticons)

		tokens := Tokenize(item.Data, s.emoticons)
		for n := 1; n <= maxNGramLength; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				gram := tokens[i : i+n]
				key := strings.Join(gram, "\x00")
				entry, ok := counters[n][key]
				if !ok {
					entry = &domain.NGramCount{
						NGram:  append([]string(nil), gram...),
						Labels: make(map[string]int),
					}
					counters[n][key] = entry
				}
				entry.Count++
				entry.Labels[item.Label]++
			}
		}
	}

	for n := 1; n <= maxNGramLength; n++ {
		analysis.NGrams[n] = topNGrams(counters[n], s.maxResults)
	}
	return analysis, nil
}

func topNGrams(counts map[string]*domain.NGramCount, limit int) []domain.NGramCount {
	out := make([]domain.NGramCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.Join(out[i].NGram, " ") < strings.Join(out[j].NGram, " ")
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Tokenize lower-cases words and splits on anything that is not a letter,
// digit or apostrophe. Known emoticons are kept as tokens verbatim.
func Tokenize(text string, lib *emoticons.Library) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if w := strings.Trim(word.String(), "'"); w != "" {
			tokens = append(tokens, w)
		}
		word.Reset()
	}

	for i := 0; i < len(text); {
		if lib != nil {
			if n := lib.MatchAt(text, i); n > 0 {
				flush()
				tokens = append(tokens, text[i:i+n])
				i += n
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			word.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
		i += size
	}
	flush()

	return tokens
}
