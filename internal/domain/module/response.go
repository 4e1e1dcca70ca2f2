// Where: internal/domain/module/response.go
// What: Parse the `kda local` response into modules.
// Why: Validate the whole listing before anything touches the filesystem.
package module

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const maxQuotedBody = 200

// ParseResponse decodes a response document and returns its modules in order.
//
// Two shapes are accepted: the `kda local` envelope, an object keyed by network
// URL whose entries carry body.result.data, and a bare array of module objects
// or envelope entries. Any malformed entry fails the whole parse.
func ParseResponse(payload []byte, networkURL string) ([]Module, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, ErrEmptyResponse
	}

	var document any
	if err := json.Unmarshal(trimmed, &document); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	objects, err := moduleObjects(document, networkURL)
	if err != nil {
		return nil, err
	}

	modules := make([]Module, 0, len(objects))
	for index, object := range objects {
		mod, err := decodeModule(object)
		if err != nil {
			return nil, fmt.Errorf("module entry %d: %w", index, err)
		}
		modules = append(modules, mod)
	}
	return modules, nil
}

func moduleObjects(document any, networkURL string) ([]any, error) {
	switch doc := document.(type) {
	case []any:
		return flattenEntries(doc)
	case map[string]any:
		entries, err := networkEntries(doc, networkURL)
		if err != nil {
			return nil, err
		}
		return flattenEntries(entries)
	default:
		return nil, fmt.Errorf("%w: top level is %s", ErrUnexpectedShape, describe(document))
	}
}

// flattenEntries expands envelope entries in place and keeps module objects as is.
func flattenEntries(entries []any) ([]any, error) {
	var out []any
	for index, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is %s", ErrUnexpectedShape, index, describe(entry))
		}
		if _, isEnvelope := obj["body"]; !isEnvelope {
			out = append(out, obj)
			continue
		}
		data, err := resultData(obj)
		if err != nil {
			return nil, fmt.Errorf("response entry %d: %w", index, err)
		}
		out = append(out, data...)
	}
	return out, nil
}

func networkEntries(doc map[string]any, networkURL string) ([]any, error) {
	value, ok := doc[networkURL]
	if !ok {
		want := strings.TrimRight(networkURL, "/")
		for key, candidate := range doc {
			if strings.TrimRight(key, "/") == want {
				value, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		keys := make([]string, 0, len(doc))
		for key := range doc {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %q (keys: %s)", ErrNetworkNotFound, networkURL, strings.Join(keys, ", "))
	}

	entries, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list under %q, got %s", ErrUnexpectedShape, networkURL, describe(value))
	}
	return entries, nil
}

func resultData(entry map[string]any) ([]any, error) {
	body, ok := entry["body"].(map[string]any)
	if !ok {
		if text, isText := entry["body"].(string); isText {
			return nil, fmt.Errorf("%w: body is text: %s", ErrUnexpectedShape, quote(text))
		}
		return nil, fmt.Errorf("%w: body", ErrMissingField)
	}
	result, ok := body["result"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body.result", ErrMissingField)
	}
	if status, _ := result["status"].(string); status == "failure" {
		return nil, &QueryFailureError{Message: failureMessage(result["error"])}
	}

	data, ok := result["data"]
	if !ok {
		return nil, fmt.Errorf("%w: body.result.data", ErrMissingField)
	}
	switch d := data.(type) {
	case []any:
		return d, nil
	case map[string]any:
		return []any{d}, nil
	default:
		return nil, fmt.Errorf("%w: body.result.data is %s", ErrUnexpectedShape, describe(data))
	}
}

func decodeModule(object any) (Module, error) {
	if err := validateModuleObject(object); err != nil {
		return Module{}, fmt.Errorf("%w: %v", ErrInvalidModule, err)
	}
	obj := object.(map[string]any)
	qualified, _ := obj["name"].(string)
	code, _ := obj["code"].(string)
	hash, _ := obj["hash"].(string)

	namespace, name := SplitName(qualified)
	if err := ValidateName(name); err != nil {
		return Module{}, err
	}
	return Module{
		QualifiedName: qualified,
		Namespace:     namespace,
		Name:          name,
		Code:          code,
		Hash:          hash,
	}, nil
}

func failureMessage(value any) string {
	switch v := value.(type) {
	case map[string]any:
		if msg, ok := v["message"].(string); ok {
			return msg
		}
	case string:
		return v
	}
	if value == nil {
		return ""
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return quote(string(encoded))
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func quote(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxQuotedBody {
		text = text[:maxQuotedBody] + "..."
	}
	return fmt.Sprintf("%q", text)
}
