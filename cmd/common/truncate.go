package common

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateWithEllipsis truncates a string to fit within maxWidth display
// cells, adding "…" if truncated. Handles wide characters correctly.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	result := make([]rune, 0, len(s))
	currentWidth := 0
	targetWidth := maxWidth - 1 // Reserve 1 cell for ellipsis

	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > targetWidth {
			break
		}
		result = append(result, r)
		currentWidth += rw
	}

	return string(result) + "…"
}

// ShortenPath shortens a file path to fit within maxWidth display cells,
// keeping the filename visible and collapsing leading directories.
func ShortenPath(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	path = filepath.ToSlash(path)
	if lipgloss.Width(path) <= maxWidth {
		return path
	}

	filename := filepath.Base(path)
	filenameWidth := lipgloss.Width(filename)

	if filenameWidth <= maxWidth {
		dir := filepath.Dir(path)
		if dir == "." || dir == "/" {
			return filename
		}

		available := maxWidth - filenameWidth - 2 // -2 for "…/"
		if available <= 0 {
			return filename
		}

		parts := strings.Split(dir, "/")
		lastDir := parts[len(parts)-1]
		if lipgloss.Width(lastDir)+1 <= available {
			return "…/" + lastDir + "/" + filename
		}

		return "…/" + filename
	}

	return TruncateWithEllipsis(filename, maxWidth)
}
