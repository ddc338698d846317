package browser

import "github.com/playwright-community/playwright-go"

// SessionOptions configures the browser session launched on first Acquire.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// StartURL is navigated to immediately after launch, when non-empty
	StartURL string

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// Timeout sets the default timeout for driver operations (in milliseconds)
	Timeout float64

	// SkipInstall disables the Playwright driver download check. Useful when
	// the driver is provisioned ahead of time.
	SkipInstall bool
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful
	// Valid values: "load", "domcontentloaded", "networkidle"
	WaitUntil string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// LocateOptions selects exactly one element-identification strategy. Exactly
// one of Selector, Role, or Label must be set; Name refines Role.
type LocateOptions struct {
	// Selector is a CSS selector (e.g. "button.submit", "#login")
	Selector string

	// Role is an ARIA role (e.g. "button", "link")
	Role string

	// Name is the accessible name used together with Role
	Name string

	// Label matches an element by its label text
	Label string
}

// Position is a coordinate offset in CSS pixels.
type Position struct {
	X float64
	Y float64
}

// ClickOptions configures element or coordinate clicking.
type ClickOptions struct {
	// Locator identifies the element to click. When nil, Position is
	// interpreted as absolute page coordinates.
	Locator playwright.Locator

	// Position is an offset within the element, or the page coordinates to
	// click when no Locator is given.
	Position *Position

	// DoubleClick performs a double click instead of a single click
	DoubleClick bool

	// Timeout in milliseconds
	Timeout float64
}

// FillOptions configures form input filling.
type FillOptions struct {
	// Locator identifies the input element
	Locator playwright.Locator

	// Text is the value to fill
	Text string

	// Sequential types the text key by key instead of setting the value
	Sequential bool

	// Delay is the pause between key presses in milliseconds (Sequential only)
	Delay float64
}

// PressOptions configures a key press.
type PressOptions struct {
	// Locator optionally targets an element; when nil the key is pressed
	// globally on the page
	Locator playwright.Locator

	// Key is the key to press (e.g. "Enter", "Tab")
	Key string
}

// CheckOptions configures checkbox/radio handling.
type CheckOptions struct {
	// Locator identifies the checkbox or radio element
	Locator playwright.Locator

	// AssertOnly skips the check action and only verifies the element is
	// already checked
	AssertOnly bool
}

// SelectOptions configures option selection on a <select> element.
type SelectOptions struct {
	// Locator identifies the <select> element
	Locator playwright.Locator

	// Options are the options to select
	Options []string

	// By chooses how Options are interpreted: "value", "label", or "index".
	// Empty defaults to "value".
	By string
}

// UploadOptions configures file uploads to a file input.
type UploadOptions struct {
	// Locator identifies the file input element
	Locator playwright.Locator

	// Files are the paths to upload
	Files []string
}

// Scroll methods supported by ScrollOptions.Method.
const (
	ScrollIntoView     = "scroll_into_view"
	ScrollMouseWheel   = "mouse_wheel"
	ScrollEvaluate     = "evaluate"
	ScrollPageEvaluate = "page_evaluate"
)

// ScrollOptions configures page or element scrolling.
type ScrollOptions struct {
	// Locator optionally targets a specific element
	Locator playwright.Locator

	// Method selects the scrolling mechanism; defaults to "evaluate"
	Method string

	// X is the horizontal scroll offset
	X int

	// Y is the vertical scroll offset
	Y int
}

// ScreenshotOptions configures element or page screenshots.
type ScreenshotOptions struct {
	// Locator optionally restricts the capture to one element
	Locator playwright.Locator

	// Path is the file the screenshot is written to
	Path string

	// FullPage captures the whole scrollable page (page captures only)
	FullPage bool
}

// WaitOptions configures waiting for an element state.
type WaitOptions struct {
	// Locator identifies the element to wait for
	Locator playwright.Locator

	// State to wait for: "attached", "detached", "visible", "hidden".
	// Empty defaults to "visible".
	State string

	// Timeout in milliseconds
	Timeout float64
}

// CaptureOptions configures network endpoint capture.
type CaptureOptions struct {
	// URLContains is the substring a finished request's URL must contain
	URLContains string

	// Reload reloads the page to provoke the request (default true behavior
	// is up to the caller)
	Reload bool

	// SettleTimeout is how long to keep listening, in milliseconds
	SettleTimeout float64
}

// HandleOptions configures element-handle transformation via JavaScript.
type HandleOptions struct {
	// Locator identifies the starting element
	Locator playwright.Locator

	// Script is a JavaScript function applied to the element, e.g.
	// "node => node.closest('.card')"
	Script string
}

// Default values for various operations
const (
	DefaultTimeout        = 30000.0 // 30 seconds in milliseconds
	DefaultSettleTimeout  = 3000.0  // network capture settle window
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)
