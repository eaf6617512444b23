package backend

type TranslateTextRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type TranslateTextResponse struct {
	TranslatedText string `json:"translatedText"`
}

type TextToSpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type TextToSpeechResponse struct {
	AudioDataURI string `json:"audioDataUri"`
}

type SpeechToTextRequest struct {
	AudioDataURI   string `json:"audioDataUri"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type SpeechToTextResponse struct {
	Transcription string `json:"transcription"`
}

type WordDetailsRequest struct {
	Word     string `json:"word"`
	Language string `json:"language"`
}

type WordDetailsResponse struct {
	DefinedWord      string   `json:"definedWord"`
	Type             string   `json:"type"`
	Meaning          string   `json:"meaning"`
	Synonyms         []string `json:"synonyms"`
	Antonyms         []string `json:"antonyms"`
	IPAPronunciation string   `json:"ipaPronunciation,omitempty"`
}

type EnhanceTextRequest struct {
	Text        string `json:"text"`
	Language    string `json:"language"`
	Instruction string `json:"instruction"`
}

type EnhanceTextResponse struct {
	EnhancedText string `json:"enhancedText"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}
