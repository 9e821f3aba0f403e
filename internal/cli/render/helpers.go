package render

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	labelStyle   = color.New(color.Faint)
	valueStyle   = color.New(color.FgWhite, color.Bold)
	addressStyle = color.New(color.FgCyan)
	hashStyle    = color.New(color.FgYellow)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed)
	warningStyle = color.New(color.FgYellow)
	titleCaser   = cases.Title(language.English)
	ansiRegex    = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)
)

const timestampFmt = "2006-01-02 15:04:05 MST"

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warningStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return failureStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successStyle.Sprintf("✅ %s", message)
}

// Title capitalizes labels such as network names and tx states
func Title(s string) string {
	return titleCaser.String(s)
}

// newTable returns a borderless table in the style used by every list command
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatUpper
	t.Style().Box.PaddingRight = "   "
	t.Style().Box.PaddingLeft = ""
	return t
}

// stripAnsiCodes removes ANSI escape sequences from a string
func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
