package tui

import (
	"strings"
)

const (
	pageWidth  = 54
	pageIndent = "  "
)

// renderPage frames body between two rules under title, followed by the
// page hot keys and the global quit hint. An empty body renders as "-".
func renderPage(title, body, hotKeys string) string {
	rule := pageIndent + strings.Repeat("─", pageWidth)

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	lines := make([]string, 0, 8)
	lines = append(lines, title, rule, "")
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, pageIndent+line)
	}
	lines = append(lines, "", rule)

	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, pageIndent+hotKeys)
	}
	lines = append(lines, pageIndent+helpLine(keys.quit))

	return strings.Join(lines, "\n")
}
