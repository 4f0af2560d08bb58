package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ShowArtifact renders a generated artifact with a colored header
func ShowArtifact(title, message string, w io.Writer) error {
	cyan := color.New(color.FgCyan, color.Bold)
	if _, err := cyan.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", message)
	return err
}
