package domain

// NGramCount is the frequency of one n-gram, overall and per label.
type NGramCount struct {
	NGram  []string       `json:"ngram"`
	Count  int            `json:"count"`
	Labels map[string]int `json:"labels"`
}

// NGramAnalysis holds the 1-, 2- and 3-gram tables for a project.
type NGramAnalysis struct {
	ProjectName string               `json:"project"`
	Items       int                  `json:"items"`
	Emoticons   int                  `json:"emoticons"`
	NGrams      map[int][]NGramCount `json:"ngrams"`
}
