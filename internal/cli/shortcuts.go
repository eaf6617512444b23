package cli

import (
	"strings"
)

type command int

const (
	commandSetText command = iota
	commandTranslate
	commandHelp
	commandSwap
	commandSourceLanguage
	commandTargetLanguage
	commandLanguages
	commandDefine
	commandEnhance
	commandOptions
	commandSpeakSource
	commandSpeakTranslation
	commandPause
	commandRecord
	commandShow
	commandClear
	commandQuit
)

// Shortcut is one entry of the keyboard surface. Binding names the key
// combination of a graphical client that the typed keys stand in for.
type Shortcut struct {
	Keys        []string
	Binding     string
	Arguments   string
	Description string

	command command
}

// Shortcuts lists every command of the interactive session in help order.
var Shortcuts = []Shortcut{
	{Keys: []string{":t"}, Binding: "Ctrl+Enter", Description: "Translate the source text", command: commandTranslate},
	{Keys: []string{":?", "/?"}, Binding: "Ctrl+/", Description: "Show keyboard shortcuts", command: commandHelp},
	{Keys: []string{":s"}, Description: "Swap the source and target languages", command: commandSwap},
	{Keys: []string{":from"}, Arguments: "<code>", Description: "Change the source language", command: commandSourceLanguage},
	{Keys: []string{":to"}, Arguments: "<code>", Description: "Change the target language", command: commandTargetLanguage},
	{Keys: []string{":l"}, Description: "List the supported languages", command: commandLanguages},
	{Keys: []string{":d"}, Arguments: "<word> [code]", Description: "Look up a word", command: commandDefine},
	{Keys: []string{":e"}, Arguments: "[instruction]", Description: "Enhance the translation", command: commandEnhance},
	{Keys: []string{":o"}, Arguments: "[label]", Description: "List or toggle enhancement options", command: commandOptions},
	{Keys: []string{":p"}, Description: "Speak the source text", command: commandSpeakSource},
	{Keys: []string{":pt"}, Description: "Speak the translation", command: commandSpeakTranslation},
	{Keys: []string{":pause"}, Description: "Pause playback", command: commandPause},
	{Keys: []string{":r"}, Description: "Start or stop recording", command: commandRecord},
	{Keys: []string{":show"}, Description: "Show the session", command: commandShow},
	{Keys: []string{":c"}, Description: "Clear the texts", command: commandClear},
	{Keys: []string{":q"}, Description: "Quit", command: commandQuit},
}

var shortcutsByKey = func() map[string]command {
	result := make(map[string]command)
	for _, shortcut := range Shortcuts {
		for _, key := range shortcut.Keys {
			result[key] = shortcut.command
		}
	}
	return result
}()

// parseLine splits an input line into a command and its argument.
// Anything that is not a known shortcut becomes the new source text.
func parseLine(line string) (command, string) {
	trimmed := strings.TrimSpace(line)
	key, argument, _ := strings.Cut(trimmed, " ")
	if cmd, ok := shortcutsByKey[key]; ok {
		return cmd, strings.TrimSpace(argument)
	}
	return commandSetText, trimmed
}
