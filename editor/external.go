package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoEditor is returned when no external editor can be resolved.
var ErrNoEditor = errors.New("editor: no external editor found")

type editorFinishedMsg struct {
	widget uint64
	path   string
	err    error
}

// startEditor writes the value to a temp file and returns the command that
// suspends the program while the external editor runs. Any read in progress
// is stopped without reporting it.
func (f *field) startEditor() tea.Cmd {
	f.stop()

	tmp, err := os.CreateTemp("", "texty-*.txt")
	if err != nil {
		return f.editorFailed(fmt.Errorf("editor: create temp file: %w", err))
	}
	path := tmp.Name()
	_, werr := tmp.WriteString(f.value.String())
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return f.editorFailed(fmt.Errorf("editor: write temp file: %w", err))
	}

	cmd, err := f.editorCommand(path)
	if err != nil {
		_ = os.Remove(path)
		return f.editorFailed(err)
	}

	f.cfg.Logger.Debug("external editor", "id", f.cfg.ID, "cmd", cmd.String())
	widget := f.widget
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{widget: widget, path: path, err: err}
	})
}

// editorResult reads back the edited file. ok is false when the editor
// failed; the returned command then reports the error.
func (f *field) editorResult(msg editorFinishedMsg) (string, tea.Cmd, bool) {
	defer os.Remove(msg.path)

	if msg.err != nil {
		return "", f.editorFailed(fmt.Errorf("editor: %w", msg.err)), false
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		return "", f.editorFailed(fmt.Errorf("editor: read temp file: %w", err)), false
	}
	s := normalizeExternal(string(data))
	return strings.TrimSuffix(s, "\n"), nil, true
}

func (f *field) editorFailed(err error) tea.Cmd {
	f.cfg.Logger.Warn("external editor failed", "id", f.cfg.ID, "err", err)
	return tea.Batch(msgCmd(ErrorMsg{ID: f.cfg.ID, Err: err}), f.arm())
}

func (f *field) editorCommand(path string) (*exec.Cmd, error) {
	if f.cfg.EditorCmd != nil {
		if cmd := f.cfg.EditorCmd(path); cmd != nil {
			return cmd, nil
		}
		return nil, ErrNoEditor
	}
	argv, err := resolveEditor(os.Getenv, exec.LookPath)
	if err != nil {
		return nil, err
	}
	return exec.Command(argv[0], append(argv[1:], path)...), nil
}

// resolveEditor returns the editor command line: $VISUAL, then $EDITOR, then
// the first of vim, nano and vi found on PATH.
func resolveEditor(getenv func(string) string, lookPath func(string) (string, error)) ([]string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if argv := strings.Fields(getenv(env)); len(argv) > 0 {
			return argv, nil
		}
	}
	for _, name := range []string{"vim", "nano", "vi"} {
		if p, err := lookPath(name); err == nil {
			return []string{p}, nil
		}
	}
	return nil, ErrNoEditor
}
