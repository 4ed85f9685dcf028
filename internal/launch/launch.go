// Package launch turns a resolved catalog item into a running
// process. It consumes the item's target path and terminal flag; it
// never ranks, scans or owns session state.
package launch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"

	"github.com/quantmind-br/sling/internal/catalog"
	"github.com/quantmind-br/sling/internal/desktop"
)

// knownTerminals are probed in order when no terminal emulator is
// configured. x-terminal-emulator is the Debian alternatives name and
// goes first on purpose.
var knownTerminals = []string{
	"x-terminal-emulator",
	"gnome-terminal",
	"konsole",
	"alacritty",
	"kitty",
	"foot",
	"wezterm",
	"xterm",
}

// Launcher spawns catalog items.
type Launcher struct {
	fs       afero.Fs
	runner   CommandRunner
	terminal string // terminal emulator for Terminal items, may be empty
	log      *zerolog.Logger
}

// New creates a Launcher. terminal may be empty; launching a Terminal
// item then fails with a descriptive error instead of guessing.
func New(fs afero.Fs, runner CommandRunner, terminal string, log *zerolog.Logger) *Launcher {
	return &Launcher{
		fs:       fs,
		runner:   runner,
		terminal: terminal,
		log:      log,
	}
}

// Launch resolves the item's command line and starts it detached.
func (l *Launcher) Launch(it catalog.Item) error {
	line, inTerminal, err := l.commandFor(it)
	if err != nil {
		return err
	}

	l.log.Info().
		Str("name", it.Name).
		Str("command", line).
		Bool("terminal", inTerminal).
		Msg("launching")

	if inTerminal {
		if l.terminal == "" {
			return fmt.Errorf("item %q needs a terminal but none is configured or installed", it.Name)
		}
		return l.runner.StartDetached(l.terminal, "-e", "sh", "-c", line)
	}
	return l.runner.StartDetached("sh", "-c", line)
}

// commandFor maps an item to the shell line to run. Scanned items
// carry a desktop entry path; user-declared items carry the command
// line itself.
func (l *Launcher) commandFor(it catalog.Item) (string, bool, error) {
	if !strings.HasSuffix(it.Path, catalog.EntrySuffix) {
		if err := preflight(it.Path); err != nil {
			return "", false, err
		}
		return it.Path, it.Terminal, nil
	}

	f, err := l.fs.Open(it.Path)
	if err != nil {
		return "", false, fmt.Errorf("open desktop entry: %w", err)
	}
	defer f.Close()

	entry, err := desktop.Parse(f)
	if err != nil {
		return "", false, fmt.Errorf("parse desktop entry: %w", err)
	}
	line := desktop.CleanExec(entry.Exec)
	if line == "" {
		return "", false, fmt.Errorf("desktop entry %q has no Exec line", it.Path)
	}
	return line, entry.Terminal || it.Terminal, nil
}

// preflight rejects command lines whose program is an absolute path
// that is not executable, so the failure surfaces here instead of as
// a silently dead detached shell.
func preflight(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("empty command line")
	}
	prog := fields[0]
	if !filepath.IsAbs(prog) {
		return nil
	}
	if err := unix.Access(prog, unix.X_OK); err != nil {
		return fmt.Errorf("%s is not executable: %w", prog, err)
	}
	return nil
}

// DetectTerminals returns the known terminal emulators present in
// PATH, probe order preserved.
func DetectTerminals(runner CommandRunner) []string {
	var found []string
	for _, term := range knownTerminals {
		if runner.CommandExists(term) {
			found = append(found, term)
		}
	}
	return found
}
