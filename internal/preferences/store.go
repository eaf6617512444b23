// Package preferences persists the user's enhancement options between sessions.
package preferences

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
)

// EnhancementOption is one toggle of the enhancement panel.
type EnhancementOption struct {
	Label       string
	Instruction string
}

var DefaultEnhancementOptions = []EnhancementOption{
	{Label: "Fix grammar", Instruction: "Fix grammar and spelling mistakes."},
	{Label: "Formal", Instruction: "Make the tone more formal."},
	{Label: "Casual", Instruction: "Make the tone more casual."},
	{Label: "Concise", Instruction: "Make the text more concise."},
	{Label: "Friendly", Instruction: "Make the text sound friendlier."},
	{Label: "Natural", Instruction: "Make the text sound natural to a native speaker."},
}

var ErrUnknownOption = errors.New("unknown enhancement option")

// Preferences is the persisted document.
type Preferences struct {
	EnhancementOptions map[string]bool `yaml:"enhancement_options"`
}

type OptionState struct {
	EnhancementOption
	Enabled bool
}

// Store keeps Preferences in memory and writes every change to a YAML file.
// An empty path keeps them in memory only.
type Store struct {
	mu          sync.Mutex
	path        string
	options     []EnhancementOption
	preferences Preferences
}

func NewStore(path string) (*Store, error) {
	store := &Store{
		path:    path,
		options: DefaultEnhancementOptions,
		preferences: Preferences{
			EnhancementOptions: map[string]bool{
				DefaultEnhancementOptions[0].Label: true,
			},
		},
	}
	if path == "" {
		return store, nil
	}

	loaded, err := readYamlFile[Preferences](path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, io.EOF) {
			return store, nil
		}
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}
	if loaded.EnhancementOptions != nil {
		store.preferences = loaded
	}
	return store, nil
}

func (store *Store) Path() string {
	return store.path
}

// Options lists the known options in display order.
func (store *Store) Options() []OptionState {
	store.mu.Lock()
	defer store.mu.Unlock()

	result := make([]OptionState, 0, len(store.options))
	for _, option := range store.options {
		result = append(result, OptionState{
			EnhancementOption: option,
			Enabled:           store.preferences.EnhancementOptions[option.Label],
		})
	}
	return result
}

// SetEnabled changes one option and saves the file.
func (store *Store) SetEnabled(label string, enabled bool) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	option, ok := store.findLocked(label)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, label)
	}
	store.preferences.EnhancementOptions[option.Label] = enabled
	return store.saveLocked()
}

// Toggle flips one option and returns its new value.
func (store *Store) Toggle(label string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	option, ok := store.findLocked(label)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownOption, label)
	}
	enabled := !store.preferences.EnhancementOptions[option.Label]
	store.preferences.EnhancementOptions[option.Label] = enabled
	return enabled, store.saveLocked()
}

// EnabledLabels returns the enabled labels, including ones from a newer
// version of the option set, sorted by display order and then by name.
func (store *Store) EnabledLabels() []string {
	store.mu.Lock()
	defer store.mu.Unlock()

	var known, unknown []string
	for _, option := range store.options {
		if store.preferences.EnhancementOptions[option.Label] {
			known = append(known, option.Label)
		}
	}
	for label, enabled := range store.preferences.EnhancementOptions {
		if enabled && !slices.Contains(known, label) {
			unknown = append(unknown, label)
		}
	}
	sort.Strings(unknown)
	return append(known, unknown...)
}

// Instruction joins the instructions of the enabled options.
func (store *Store) Instruction() string {
	labels := store.EnabledLabels()

	store.mu.Lock()
	defer store.mu.Unlock()
	instructions := make([]string, 0, len(labels))
	for _, label := range labels {
		if option, ok := store.findLocked(label); ok {
			instructions = append(instructions, option.Instruction)
			continue
		}
		instructions = append(instructions, label)
	}
	return strings.Join(instructions, " ")
}

func (store *Store) findLocked(label string) (EnhancementOption, bool) {
	for _, option := range store.options {
		if strings.EqualFold(option.Label, strings.TrimSpace(label)) {
			return option, true
		}
	}
	return EnhancementOption{}, false
}

func (store *Store) saveLocked() error {
	if store.path == "" {
		return nil
	}
	if err := writeYamlFile(store.path, store.preferences); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", store.path, err)
	}
	return nil
}
