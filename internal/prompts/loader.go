// Package prompts holds the model prompt templates used for skill detection.
// Templates live in embedded JSON files mapping prompt names to template text
// with {{.Name}} placeholders.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	mu     sync.Mutex
	parsed = map[string]map[string]string{}
)

// Get returns the prompt stored under key in the named embedded file.
func Get(filename, key string) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	templates, ok := parsed[filename]
	if !ok {
		data, err := promptFiles.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("reading prompt file %s: %w", filename, err)
		}
		if err := json.Unmarshal(data, &templates); err != nil {
			return "", fmt.Errorf("parsing prompt file %s: %w", filename, err)
		}
		parsed[filename] = templates
	}

	prompt, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the program cannot run without; a missing
// template is a packaging error, so it panics.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(err)
	}
	return prompt
}

// Format substitutes every {{.Name}} placeholder in the template with the
// matching value from data. Placeholders without a value are left as-is.
func Format(template string, data map[string]string) string {
	out := template
	for name, value := range data {
		out = strings.ReplaceAll(out, "{{."+name+"}}", value)
	}
	return out
}
