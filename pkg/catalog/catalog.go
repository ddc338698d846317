// Package catalog turns captured component-API responses into usable records.
//
// The component service returns deeply nested JSON whose shape varies by
// deployment: component definitions may sit in a top-level list, under
// category keys, or several levels down. Flatten walks the whole structure
// and collects every object that carries a "task" field, which is the marker
// for a component definition.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Component is one component definition as returned by the component API.
// The schema is open-ended, so the record keeps every field.
type Component map[string]interface{}

// stringField returns the named field coerced to a string.
func (c Component) stringField(key string) string {
	value, ok := c[key]
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

// Task returns the component's task name.
func (c Component) Task() string {
	return c.stringField("task")
}

// Category returns the component's category.
func (c Component) Category() string {
	return c.stringField("category")
}

// Flatten parses raw JSON and collects every object carrying a "task" key,
// regardless of nesting depth.
func Flatten(raw []byte) ([]Component, error) {
	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	return collect(data), nil
}

func collect(data interface{}) []Component {
	var result []Component

	switch node := data.(type) {
	case []interface{}:
		for _, item := range node {
			result = append(result, collect(item)...)
		}

	case map[string]interface{}:
		if _, ok := node["task"]; ok {
			result = append(result, Component(node))
			return result
		}
		// Walk keys in sorted order so output is deterministic.
		keys := make([]string, 0, len(node))
		for key := range node {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			result = append(result, collect(node[key])...)
		}
	}

	return result
}

// FilterCategory returns the components whose category matches, ignoring case
// and surrounding whitespace.
func FilterCategory(components []Component, category string) []Component {
	want := strings.ToLower(strings.TrimSpace(category))

	var filtered []Component
	for _, component := range components {
		if strings.ToLower(strings.TrimSpace(component.Category())) == want {
			filtered = append(filtered, component)
		}
	}
	return filtered
}

// FindComponent returns the first component whose task name matches, ignoring
// case.
func FindComponent(components []Component, name string) (Component, bool) {
	want := strings.ToLower(name)

	for _, component := range components {
		if strings.ToLower(component.Task()) == want {
			return component, true
		}
	}
	return nil, false
}
