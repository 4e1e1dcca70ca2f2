// Where: internal/domain/template/renderer.go
// What: Triple-brace placeholder substitution for ktpl query templates.
// Why: Produce the concrete document handed to `kda gen`.
package template

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TokenChain     = "chain"
	TokenNamespace = "namespace"
)

var placeholderPattern = regexp.MustCompile(`\{\{\{(\w+)\}\}\}`)

var errTemplatePathRequired = errors.New("template path is required")

// MissingValueError reports a recognized placeholder without a value.
type MissingValueError struct {
	Token string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("no value supplied for placeholder {{{%s}}}", e.Token)
}

// Render replaces every {{{token}}} whose token is a key of values.
// Markers for other tokens are passed through unchanged.
func Render(content string, values map[string]string) (string, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.TrimSpace(values[key]) == "" {
			return "", MissingValueError{Token: key}
		}
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(content, func(marker string) string {
		token := placeholderPattern.FindStringSubmatch(marker)[1]
		if value, ok := values[token]; ok {
			return value
		}
		return marker
	})
	return rendered, nil
}

// RenderFile reads the template at path and renders it with values.
func RenderFile(path string, values map[string]string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errTemplatePathRequired
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return Render(string(payload), values)
}

// Placeholders lists the distinct tokens used in content, in first-seen order.
// On rendered output it yields the markers left for unknown tokens.
func Placeholders(content string) []string {
	seen := map[string]struct{}{}
	var tokens []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		token := match[1]
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// CheckYAML verifies every document in content is syntactically valid YAML.
// Documents are decoded into yaml.Node so mapping keys of any shape are allowed.
func CheckYAML(content string) error {
	decoder := yaml.NewDecoder(strings.NewReader(content))
	for index := 0; ; index++ {
		var node yaml.Node
		err := decoder.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("rendered document %d is not valid yaml: %w", index, err)
		}
	}
}
