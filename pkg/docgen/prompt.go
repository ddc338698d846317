package docgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xpressai/pagescribe/pkg/catalog"
)

// promptPreamble frames the task. The instructions are deliberately strict
// about template adherence: the model rewrites content, never structure.
const promptPreamble = `You are a documentation generator. Generate a new README in Markdown format for a component library using the following details. The README must follow the style and structure of the provided template. It should be concise, clear, and natural, without unnecessary filler.`

const promptInstructions = `Using the above information, generate a new README in Markdown format that summarizes the key features of the library, describes its main components, and includes the provided screenshot links as visual references.
Do not enclose the output within Markdown formatting indicators like ` + "```markdown```" + `.
You must strictly adhere to the given template, maintaining its exact structure, paragraph organization, and formatting.
Do not alter the writing style or add any unnecessary content.`

// BuildPrompt assembles the README-drafting prompt from the template, the
// category's component records, and the screenshot links. truncateCatalog, if
// non-nil, is applied to the serialized catalog to keep the prompt within the
// token budget.
func BuildPrompt(payload *catalog.CategoryPayload, truncateCatalog func(string) string) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("payload is required")
	}
	if payload.ReadmeTemplate == "" {
		return "", fmt.Errorf("readme template is required")
	}

	catalogJSON, err := json.MarshalIndent(payload.CategoryInfo, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize category info: %w", err)
	}
	catalogText := string(catalogJSON)
	if truncateCatalog != nil {
		catalogText = truncateCatalog(catalogText)
	}

	linksJSON, err := json.MarshalIndent(payload.ScreenshotLinks, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize screenshot links: %w", err)
	}

	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\nTemplate (Markdown):\n")
	b.WriteString(payload.ReadmeTemplate)
	b.WriteString("\n\nCategory Information (components library details):\n")
	b.WriteString(catalogText)
	b.WriteString("\n\nScreenshot Links for the showcase components:\n")
	b.WriteString(string(linksJSON))
	b.WriteString("\n\n")
	b.WriteString(promptInstructions)

	return b.String(), nil
}
