package dictionary

import (
	"bufio"
	"log"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

var (
	fuzzyModel *fuzzy.Model
	fuzzyOnce  sync.Once
)

// initFuzzyModel trains a fuzzy model on the embedded word list. The model
// backs suggestions for words that are not known misspellings.
func initFuzzyModel() *fuzzy.Model {
	model := fuzzy.NewModel()

	model.SetDepth(2)     // Maximum edit distance
	model.SetThreshold(1) // Minimum frequency threshold

	file, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		log.Printf("[Dictionary] Error opening embedded word list: %v", err)
		return model
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	wordCount := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			model.TrainWord(strings.ToLower(word))
			wordCount++
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("[Dictionary] Error reading embedded word list: %v", err)
	}

	// Corrections from the misspelling table are trained as well so the
	// model can always reproduce them.
	for _, correction := range misspellings {
		for _, part := range strings.Fields(correction) {
			model.TrainWord(strings.ToLower(part))
		}
	}

	log.Printf("[Dictionary] Trained fuzzy model with %d words", wordCount)

	return model
}

// Suggest returns up to three suggested corrections for a word, best match
// first. The canonical correction is returned alone when the word is a known
// misspelling.
func Suggest(word string) []string {
	if correction, ok := Correction(word); ok {
		return []string{correction}
	}

	fuzzyOnce.Do(func() {
		fuzzyModel = initFuzzyModel()
	})

	suggestions := fuzzyModel.Suggestions(strings.ToLower(word), false)
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
