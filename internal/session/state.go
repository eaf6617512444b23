package session

import "github.com/at-ishikawa/linguaflow/internal/dictionary"

type Side int

const (
	SideSource Side = iota
	SideTranslated
)

func (s Side) String() string {
	if s == SideTranslated {
		return "translated"
	}
	return "source"
}

// State is a snapshot of one translation session.
//
// TranslatedText is empty, equal to SourceText when both languages are the
// same, or the last successful translation of SourceText between the current
// languages.
type State struct {
	SourceText      string
	TranslatedText  string
	SourceLanguage  string
	TargetLanguage  string
	SourceWordCount int
	EnhancedText    string
	Translating     bool
	Enhancing       bool
	SpeechLoading   bool
	ActiveWord      *ActiveWord
}

// ActiveWord is the definition slot. Only the most recently requested word owns it.
type ActiveWord struct {
	Key     dictionary.Key
	Loading bool
	Record  dictionary.Record
	Cached  bool
}

func (s State) clone() State {
	if s.ActiveWord != nil {
		activeWord := *s.ActiveWord
		s.ActiveWord = &activeWord
	}
	return s
}
