package dictionary

import (
	"regexp"
	"strings"
)

// misspellings maps known misspellings (lowercase) to their corrections.
var misspellings = map[string]string{
	"recieve":      "receive",
	"recieved":     "received",
	"recieving":    "receiving",
	"seperate":     "separate",
	"seperated":    "separated",
	"seperately":   "separately",
	"definately":   "definitely",
	"occured":      "occurred",
	"occuring":     "occurring",
	"occurence":    "occurrence",
	"accomodate":   "accommodate",
	"acheive":      "achieve",
	"acheived":     "achieved",
	"adress":       "address",
	"aquire":       "acquire",
	"arguement":    "argument",
	"beleive":      "believe",
	"beleived":     "believed",
	"calender":     "calendar",
	"catagory":     "category",
	"cemetary":     "cemetery",
	"collegue":     "colleague",
	"commitee":     "committee",
	"comittee":     "committee",
	"completly":    "completely",
	"concious":     "conscious",
	"dependant":    "dependent",
	"embarass":     "embarrass",
	"enviroment":   "environment",
	"existance":    "existence",
	"familar":      "familiar",
	"finaly":       "finally",
	"foriegn":      "foreign",
	"goverment":    "government",
	"gaurd":        "guard",
	"gramatical":   "grammatical",
	"harrass":      "harass",
	"immediatly":   "immediately",
	"independant":  "independent",
	"liason":       "liaison",
	"libary":       "library",
	"lisence":      "license",
	"maintainance": "maintenance",
	"maintenence":  "maintenance",
	"managment":    "management",
	"neccessary":   "necessary",
	"necessery":    "necessary",
	"noticable":    "noticeable",
	"ocassion":     "occasion",
	"occassion":    "occasion",
	"paralel":      "parallel",
	"posession":    "possession",
	"prefered":     "preferred",
	"priviledge":   "privilege",
	"probaly":      "probably",
	"publically":   "publicly",
	"realy":        "really",
	"reccomend":    "recommend",
	"recomend":     "recommend",
	"refered":      "referred",
	"relevent":     "relevant",
	"repitition":   "repetition",
	"rythm":        "rhythm",
	"succesful":    "successful",
	"sucessful":    "successful",
	"supercede":    "supersede",
	"teh":          "the",
	"thier":        "their",
	"tommorow":     "tomorrow",
	"tommorrow":    "tomorrow",
	"truely":       "truly",
	"untill":       "until",
	"wich":         "which",
	"wierd":        "weird",
	"wihtout":      "without",
	"writting":     "writing",
}

// Correction returns the canonical correction for a known misspelling.
// The lookup is case-insensitive; the second return value reports whether
// the word is a known misspelling.
func Correction(word string) (string, bool) {
	correction, ok := misspellings[strings.ToLower(word)]
	return correction, ok
}

// MisspellingCount returns the number of known misspellings.
func MisspellingCount() int {
	return len(misspellings)
}

// GrammarPattern represents a single grammar mistake with its correction.
type GrammarPattern struct {
	Pattern    *regexp.Regexp
	Match      string
	Correction string
	Message    string
}

var grammarPatterns = []GrammarPattern{
	{regexp.MustCompile(`(?i)\bcould of\b`), "could of", "could have", `"could of" should be "could have"`},
	{regexp.MustCompile(`(?i)\bwould of\b`), "would of", "would have", `"would of" should be "would have"`},
	{regexp.MustCompile(`(?i)\bshould of\b`), "should of", "should have", `"should of" should be "should have"`},
	{regexp.MustCompile(`(?i)\bmust of\b`), "must of", "must have", `"must of" should be "must have"`},
	{regexp.MustCompile(`(?i)\bmight of\b`), "might of", "might have", `"might of" should be "might have"`},
	{regexp.MustCompile(`(?i)\byour welcome\b`), "your welcome", "you're welcome", `"your welcome" should be "you're welcome"`},
	{regexp.MustCompile(`(?i)\bit's own\b`), "it's own", "its own", `"it's own" should be "its own"`},
	{regexp.MustCompile(`(?i)\balot\b`), "alot", "a lot", `"alot" should be "a lot"`},
	{regexp.MustCompile(`(?i)\birregardless\b`), "irregardless", "regardless", `"irregardless" should be "regardless"`},
	{regexp.MustCompile(`(?i)\bfor all intensive purposes\b`), "for all intensive purposes", "for all intents and purposes", `"for all intensive purposes" should be "for all intents and purposes"`},
	{regexp.MustCompile(`(?i)\bcould care less\b`), "could care less", "couldn't care less", `"could care less" should be "couldn't care less"`},
}

// GrammarPatterns returns the fixed list of grammar patterns.
func GrammarPatterns() []GrammarPattern {
	return grammarPatterns
}

// honorificTokens is the fixed list of honorific abbreviations flagged in
// prose content.
var honorificTokens = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Sr.", "Jr."}

// HonorificPattern matches any honorific token, case-insensitively.
var HonorificPattern = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr)\.`)

// Honorifics returns the fixed list of honorific tokens.
func Honorifics() []string {
	return honorificTokens
}

// PlaceholderPattern represents one placeholder marker to detect. Patterns
// for TODO, TBD and FIXME are deliberately case-sensitive: lowercase "todo"
// in prose is not a work marker.
type PlaceholderPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

var placeholderPatterns = []PlaceholderPattern{
	{"lorem ipsum", regexp.MustCompile(`(?i)lorem ipsum`)},
	{"dolor sit amet", regexp.MustCompile(`(?i)dolor sit amet`)},
	{"TODO", regexp.MustCompile(`\bTODO\b`)},
	{"TBD", regexp.MustCompile(`\bTBD\b`)},
	{"FIXME", regexp.MustCompile(`\bFIXME\b`)},
	{"placeholder", regexp.MustCompile(`(?i)\bplaceholder\b`)},
	{"bracketed marker", regexp.MustCompile(`\[\s*(\.\.\.|…|insert [^\]]*|tbd)\s*\]`)},
	{"template expression", regexp.MustCompile(`\{\{[^}]*\}\}`)},
	{"repeated x marker", regexp.MustCompile(`(?i)\bx{4,}\b`)},
}

// PlaceholderPatterns returns the fixed list of placeholder patterns.
func PlaceholderPatterns() []PlaceholderPattern {
	return placeholderPatterns
}

// casualWords is the denylist of casual words considered inappropriate for
// published prose.
var casualWords = []string{
	"gonna", "wanna", "gotta", "kinda", "sorta", "dunno",
	"yeah", "nope", "ain't", "stuff", "awesome",
}

// CasualWords returns the fixed denylist of casual words.
func CasualWords() []string {
	return casualWords
}

// PluralPair represents a singular/plural word pair whose document-wide
// usage counts are compared for consistency.
type PluralPair struct {
	Singular string
	Plural   string
}

// PluralDifferenceThreshold is the count difference above which mixed
// singular/plural usage is flagged.
const PluralDifferenceThreshold = 5

var pluralPairs = []PluralPair{
	{"user", "users"},
	{"file", "files"},
	{"document", "documents"},
	{"item", "items"},
	{"error", "errors"},
	{"setting", "settings"},
	{"option", "options"},
	{"value", "values"},
}

// PluralPairs returns the fixed list of singular/plural pairs.
func PluralPairs() []PluralPair {
	return pluralPairs
}
