package dictionary

import (
	"fmt"
	"strings"
)

// Record is the definition of a word as returned by the word-details endpoint.
// Records are immutable once cached.
type Record struct {
	Word             string   `json:"word"`
	PartOfSpeech     string   `json:"partOfSpeech"`
	Meaning          string   `json:"meaning"`
	Synonyms         []string `json:"synonyms"`
	Antonyms         []string `json:"antonyms"`
	IPAPronunciation string   `json:"ipaPronunciation,omitempty"`
}

// Key identifies a cached record by its normalized word and language code.
type Key struct {
	Word     string
	Language string
}

func (k Key) String() string {
	return k.Language + ":" + k.Word
}

// FailureRecord builds the record shown when a lookup fails, so the definition
// surface always has something to render once a lookup was attempted.
func FailureRecord(word string, message string) Record {
	return Record{
		Word:         word,
		PartOfSpeech: "error",
		Meaning:      fmt.Sprintf("Could not load details for %q: %s", word, message),
	}
}

// IsFailure reports whether r was created by FailureRecord.
func (r Record) IsFailure() bool {
	return r.PartOfSpeech == "error" && len(r.Synonyms) == 0 && len(r.Antonyms) == 0
}

// Format renders the record for a terminal.
func (r Record) Format() string {
	builder := strings.Builder{}
	if r.IPAPronunciation != "" {
		builder.WriteString(fmt.Sprintf("%s: /%s/\n", r.Word, strings.Trim(r.IPAPronunciation, "/")))
	} else {
		builder.WriteString(r.Word + "\n")
	}
	builder.WriteString(fmt.Sprintf("[%s]: %s", r.PartOfSpeech, r.Meaning))
	if len(r.Synonyms) > 0 {
		builder.WriteString(fmt.Sprintf("\nSynonyms: %s", strings.Join(r.Synonyms, ", ")))
	}
	if len(r.Antonyms) > 0 {
		builder.WriteString(fmt.Sprintf("\nAntonyms: %s", strings.Join(r.Antonyms, ", ")))
	}
	return builder.String()
}
