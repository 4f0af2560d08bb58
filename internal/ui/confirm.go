package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmWithDefault asks the user for a yes/no confirmation with the
// given default for empty input
func ConfirmWithDefault(message string, defaultYes bool, input io.Reader, output io.Writer) (bool, error) {
	scanner := bufio.NewScanner(input)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	for {
		if _, err := fmt.Fprintf(output, "%s %s: ", message, hint); err != nil {
			return false, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, err
			}
			return false, io.EOF
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if _, err := fmt.Fprintln(output, "Please enter 'y' or 'n'"); err != nil {
				return false, err
			}
		}
	}
}
