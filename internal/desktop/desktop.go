package desktop

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry holds the fields of a freedesktop .desktop file that matter to
// the launcher. Everything else is ignored during parsing.
type Entry struct {
	Type      string
	Name      string
	Exec      string
	Icon      string
	Comment   string
	Terminal  bool
	NoDisplay bool
	Hidden    bool
}

// Parse parses a .desktop file from a reader
func Parse(r io.Reader) (*Entry, error) {
	e := &Entry{}
	scanner := bufio.NewScanner(r)
	inDesktopEntry := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Only the [Desktop Entry] section is relevant; actions and
		// other groups follow it and are skipped wholesale.
		if strings.HasPrefix(line, "[") {
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}

		if inDesktopEntry && strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			switch key {
			case "Type":
				e.Type = value
			case "Name":
				e.Name = value
			case "Exec":
				e.Exec = value
			case "Icon":
				e.Icon = value
			case "Comment":
				e.Comment = value
			case "Terminal":
				e.Terminal = value == "true"
			case "NoDisplay":
				e.NoDisplay = value == "true"
			case "Hidden":
				e.Hidden = value == "true"
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan desktop file: %w", err)
	}

	return e, nil
}

// Write writes a .desktop file to a writer
func Write(w io.Writer, e *Entry) error {
	fmt.Fprintln(w, "[Desktop Entry]")
	fmt.Fprintf(w, "Type=%s\n", e.Type)
	fmt.Fprintf(w, "Name=%s\n", e.Name)
	fmt.Fprintf(w, "Exec=%s\n", e.Exec)

	if e.Icon != "" {
		fmt.Fprintf(w, "Icon=%s\n", e.Icon)
	}
	if e.Comment != "" {
		fmt.Fprintf(w, "Comment=%s\n", e.Comment)
	}
	if e.Terminal {
		fmt.Fprintln(w, "Terminal=true")
	}
	if e.NoDisplay {
		fmt.Fprintln(w, "NoDisplay=true")
	}

	return nil
}

// Validate checks if the desktop entry has required fields
func Validate(e *Entry) error {
	if e.Name == "" {
		return fmt.Errorf("Name field is required")
	}
	if e.Exec == "" {
		return fmt.Errorf("Exec field is required")
	}
	return nil
}

// CleanExec strips the freedesktop field codes (%f, %U and friends)
// from an Exec line, leaving something that can be handed to a shell.
func CleanExec(execLine string) string {
	fields := strings.Fields(execLine)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) == 2 && f[0] == '%' {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
