package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	paragraphWidth = 60
	maxKeyPadding  = 50
)

func Color() aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	return Color().Sprintf(Color().Bold(text))
}

func RedText(text string) aurora.Value {
	return Color().Red(text)
}

func GreenText(text string) aurora.Value {
	return Color().Green(text)
}

func BlueText(text string) aurora.Value {
	return Color().Blue(text)
}

func MagentaText(text string) aurora.Value {
	return Color().Magenta(text)
}

func YellowText(text string) aurora.Value {
	return Color().Yellow(text)
}

func GrayText(text string) aurora.Value {
	return Color().Gray(12, text)
}

func Heading(text string) string {
	return fmt.Sprintf("%s\n", Color().Bold(Color().Underline(text)))
}

func AlertWarning(text string) string {
	return fmt.Sprintf("%s %s\n", YellowText("!"), text)
}

// ObscureText hides all but the last four characters of a secret.
func ObscureText(text string) string {
	if len(text) <= 4 {
		return strings.Repeat("*", len(text))
	}
	return strings.Repeat("*", 8) + text[len(text)-4:]
}

// KeyValues renders aligned "key: value" lines sorted by key.
func KeyValues(items map[string]string) string {
	if len(items) == 0 {
		return ""
	}
	keys := make([]string, 0, len(items))
	width := 0
	for k := range items {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)
	if width > maxKeyPadding {
		width = maxKeyPadding
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", width+1, k+":", items[k])
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

func OrderedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// Truncate shortens text to at most maxLen characters by eliding the middle.
// At least one character of each end is always kept.
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	keep := maxLen - 3
	if keep < 2 {
		keep = 2
	}
	head := (keep + 1) / 2
	tail := keep / 2
	return text[:head] + "..." + text[len(text)-tail:]
}

// Paragraph word-wraps text to the paragraph width.
func Paragraph(text string) string {
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		switch {
		case line == 0:
		case line+1+len(word) > paragraphWidth:
			b.WriteString("\n")
			line = 0
		default:
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	if b.Len() == 0 {
		return ""
	}
	return b.String() + "\n"
}

func PrefixLines(text string, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		b.WriteString(prefix + line + "\n")
	}
	return b.String()
}
