package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_filePath(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{
			name:     "simple word",
			key:      Key{Word: "hello", Language: "en"},
			expected: filepath.Join("cache", "en", "hello.json"),
		},
		{
			name:     "word with special characters",
			key:      Key{Word: "don't", Language: "en"},
			expected: filepath.Join("cache", "en", "don%27t.json"),
		},
		{
			name:     "slash is escaped",
			key:      Key{Word: "a/b", Language: "en"},
			expected: filepath.Join("cache", "en", "a%2Fb.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache("cache")
			assert.Equal(t, tt.expected, cache.filePath(tt.key))
		})
	}
}

func TestFileCache_PutAndGet(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	key := Key{Word: "chào", Language: "vi"}
	record := Record{
		Word:         "chào",
		PartOfSpeech: "interjection",
		Meaning:      "hello",
		Synonyms:     []string{"xin chào"},
		Antonyms:     []string{"tạm biệt"},
	}

	_, ok := cache.Get(key)
	assert.False(t, ok)

	require.NoError(t, cache.Put(key, record))

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, record, got)
}

func TestFileCache_Get(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		setupFile   bool
		wantOK      bool
		want        Record
	}{
		{
			name:        "existing file",
			setupFile:   true,
			fileContent: `{"word":"test","partOfSpeech":"noun","meaning":"a trial"}`,
			wantOK:      true,
			want:        Record{Word: "test", PartOfSpeech: "noun", Meaning: "a trial"},
		},
		{
			name:   "non-existent file",
			wantOK: false,
		},
		{
			name:        "broken json",
			setupFile:   true,
			fileContent: `{"word":`,
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(t.TempDir())
			key := Key{Word: "test", Language: "en"}

			if tt.setupFile {
				path := cache.filePath(key)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte(tt.fileContent), 0644))
			}

			got, ok := cache.Get(key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
