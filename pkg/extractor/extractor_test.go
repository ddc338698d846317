package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<title> Component Gallery </title>
	<meta name="description" content="Browse automation components.">
	<style>body { color: red; }</style>
</head>
<body>
	<h1>Components</h1>
	<script>console.log("noise");</script>
	<p>Reusable building blocks.</p>
	<h2>Browser</h2>
	<a href="/components/click">Click Element</a>
	<a href="/components/fill">Fill Input</a>
	<noscript>Enable JavaScript.</noscript>
</body>
</html>`

func TestText_SkipsNoise(t *testing.T) {
	text, err := Text(samplePage)
	require.NoError(t, err)

	assert.Contains(t, text, "Components")
	assert.Contains(t, text, "Reusable building blocks.")
	assert.Contains(t, text, "Click Element")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Enable JavaScript")
	assert.NotContains(t, text, "Component Gallery") // head text is not body text
}

func TestText_BodyAsJSON(t *testing.T) {
	// API responses viewed in the browser render their JSON as body text.
	text, err := Text(`<html><body>{"components": [{"task": "A"}]}</body></html>`)
	require.NoError(t, err)
	assert.Equal(t, `{"components": [{"task": "A"}]}`, text)
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(samplePage)
	require.NoError(t, err)

	assert.Equal(t, "Component Gallery", summary.Title)
	assert.Equal(t, "Browse automation components.", summary.Description)
	assert.Equal(t, []string{"Components", "Browser"}, summary.Headings)

	require.Len(t, summary.Links, 2)
	assert.Equal(t, Link{Text: "Click Element", Href: "/components/click"}, summary.Links[0])
	assert.Equal(t, Link{Text: "Fill Input", Href: "/components/fill"}, summary.Links[1])

	assert.Contains(t, summary.Text, "Reusable building blocks.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "short", Truncate("short", 0))

	long := Truncate("abcdefghij", 4)
	assert.Contains(t, long, "abcd")
	assert.Contains(t, long, "[Content truncated: 4 of 10 characters shown]")
}
