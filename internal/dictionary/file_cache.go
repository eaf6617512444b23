package dictionary

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
)

// FileCache persists records as one JSON file per key under rootDir/<language>/.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(key Key) string {
	return filepath.Join(f.rootDir, url.PathEscape(key.Language), url.PathEscape(key.Word)+".json")
}

func (f *FileCache) Get(key Key) (Record, bool) {
	localFilePath := f.filePath(key)
	if _, err := os.Stat(localFilePath); err != nil {
		return Record{}, false
	}

	contents, err := f.read(key)
	if err != nil {
		slog.Default().Warn("failed to read a cached word detail", "path", localFilePath, "error", err)
		return Record{}, false
	}
	var record Record
	if err := json.Unmarshal(contents, &record); err != nil {
		slog.Default().Warn("failed to decode a cached word detail", "path", localFilePath, "error", err)
		return Record{}, false
	}
	return record, true
}

func (f *FileCache) Put(key Key, record Record) error {
	contents, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	localFilePath := f.filePath(key)
	if err := os.MkdirAll(filepath.Dir(localFilePath), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

func (f *FileCache) read(key Key) ([]byte, error) {
	file, err := os.Open(f.filePath(key))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
