package catalog

import (
	"encoding/json"
	"fmt"
)

// CategoryPayload is the workflow input bundling a category's component
// records, the README template (or a URL pointing at one), and screenshot
// links for the showcase components.
type CategoryPayload struct {
	CategoryInfo    []Component `json:"category_info"`
	ReadmeTemplate  string      `json:"readme_template"`
	ScreenshotLinks []string    `json:"screenshot_links"`
}

// ComponentRef names a single component on a gallery page.
type ComponentRef struct {
	URL           string `json:"url"`
	ComponentName string `json:"component_name"`
}

// CategoryRef names a component category on a gallery page.
type CategoryRef struct {
	URL          string `json:"url"`
	CategoryName string `json:"category_name"`
}

// PathRef pairs a gallery URL with an output file path.
type PathRef struct {
	URL      string `json:"url"`
	FilePath string `json:"file_path"`
}

// ParseCategoryPayload decodes a CategoryPayload from raw JSON.
func ParseCategoryPayload(raw []byte) (*CategoryPayload, error) {
	var payload CategoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid category payload: %w", err)
	}
	return &payload, nil
}

// ParseComponentRef decodes a ComponentRef from raw JSON.
func ParseComponentRef(raw []byte) (*ComponentRef, error) {
	var ref ComponentRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("invalid component reference: %w", err)
	}
	return &ref, nil
}

// ParseCategoryRef decodes a CategoryRef from raw JSON.
func ParseCategoryRef(raw []byte) (*CategoryRef, error) {
	var ref CategoryRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("invalid category reference: %w", err)
	}
	return &ref, nil
}

// ParsePathRef decodes a PathRef from raw JSON.
func ParsePathRef(raw []byte) (*PathRef, error) {
	var ref PathRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("invalid path reference: %w", err)
	}
	return &ref, nil
}
