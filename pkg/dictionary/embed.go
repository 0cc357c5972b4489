package dictionary

import (
	"bufio"
	"embed"
	"log"
	"strings"
	"sync"
)

//go:embed data/words.txt
var embeddedFS embed.FS

var (
	knownWords     map[string]bool
	knownWordsOnce sync.Once
)

// loadKnownWords loads the embedded word list into a lookup map. Corrections
// from the misspelling table are included so fixed content never re-flags.
func loadKnownWords() map[string]bool {
	words := make(map[string]bool)

	file, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		log.Printf("[Dictionary] Error opening embedded word list: %v", err)
		return words
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words[strings.ToLower(word)] = true
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("[Dictionary] Error reading embedded word list: %v", err)
	}

	for _, correction := range misspellings {
		for _, part := range strings.Fields(correction) {
			words[strings.ToLower(part)] = true
		}
	}

	return words
}

// IsKnownWord reports whether a word appears in the embedded word list.
// The lookup is case-insensitive.
func IsKnownWord(word string) bool {
	knownWordsOnce.Do(func() {
		knownWords = loadKnownWords()
		log.Printf("[Dictionary] Loaded %d known words", len(knownWords))
	})
	return knownWords[strings.ToLower(word)]
}

// KnownWordCount returns the size of the embedded word list.
func KnownWordCount() int {
	IsKnownWord("")
	return len(knownWords)
}
