package intent

// Vocabulary holds the keyword tables driving the deterministic fallback.
// Kept as data rather than hardcoded match arms so deployments can extend
// the catalog taxonomy and tests can inject a minimal table.
type Vocabulary struct {
	// Genres maps query tokens to canonical genre identifiers.
	Genres map[string]string
	// Platforms maps query tokens to canonical platform identifiers.
	Platforms map[string]string
}

// DefaultVocabulary returns the built-in catalog taxonomy.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Genres: map[string]string{
			"action":      "action",
			"comedy":      "comedy",
			"drama":       "drama",
			"horror":      "horror",
			"thriller":    "thriller",
			"romance":     "romance",
			"sci-fi":      "science_fiction",
			"scifi":       "science_fiction",
			"fantasy":     "fantasy",
			"documentary": "documentary",
		},
		Platforms: map[string]string{
			"netflix": "netflix",
			"prime":   "prime_video",
			"hulu":    "hulu",
			"disney":  "disney_plus",
			"hbo":     "hbo_max",
		},
	}
}
