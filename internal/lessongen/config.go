package lessongen

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MaxGrades bounds how many variants one request may ask for.
	MaxGrades int
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.7,
		MaxGrades:   8,
	}
}
