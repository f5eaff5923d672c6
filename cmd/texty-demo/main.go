package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/texty"
	"github.com/iw2rmb/texty/editor"
	"github.com/iw2rmb/texty/wrapped"
)

const (
	titleLabel = "Title: "
	titleRow   = 1
	areaRow    = 3
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

type focus int

const (
	focusTitle focus = iota
	focusNotes
)

type model struct {
	title  editor.Textbox
	notes  editor.Textarea
	focus  focus
	status string
	log    *slog.Logger
}

func newModel(value string, wide bool, mode wrapped.Mode, log *slog.Logger) model {
	base := editor.Config{
		WideMode:  wide,
		WrapMode:  mode,
		Style:     editor.DefaultStyle(),
		KeyMap:    editor.DefaultKeyMap(),
		Keys:      true,
		Vi:        true,
		Clipboard: editor.SystemClipboard{},
		Logger:    log,
	}

	titleCfg := base
	titleCfg.ID = "title"
	titleCfg.Value = "texty"

	notesCfg := base
	notesCfg.ID = "notes"
	notesCfg.Value = value

	m := model{
		title:  editor.NewTextbox(titleCfg),
		notes:  editor.NewTextarea(notesCfg),
		status: "enter/i: edit  e: $EDITOR  tab: switch  q: quit",
		log:    log,
	}
	m.title, _ = m.title.Focus()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.title = m.title.SetWidth(max(msg.Width-len(titleLabel), 1))
		m.notes = m.notes.SetSize(msg.Width, max(msg.Height-areaRow-2, 1))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.title.Reading() && !m.notes.Reading() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				return m.switchFocus()
			}
		}
		var cmd tea.Cmd
		if m.focus == focusTitle {
			m.title, cmd = m.title.Update(msg)
		} else {
			m.notes, cmd = m.notes.Update(msg)
		}
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		switch {
		case msg.Y == titleRow:
			local := msg
			local.X -= len(titleLabel)
			local.Y = 0
			m.title, cmd = m.title.Update(local)
		case msg.Y >= areaRow:
			local := msg
			local.Y -= areaRow
			m.notes, cmd = m.notes.Update(local)
		}
		return m, cmd

	case editor.SubmitMsg:
		m.status = fmt.Sprintf("%s submitted: %q", msg.ID, truncate(msg.Value, 40))
		return m, nil
	case editor.CancelMsg:
		m.status = fmt.Sprintf("%s canceled", msg.ID)
		return m, nil
	case editor.ActionMsg:
		m.log.Info("read finished", "id", msg.ID, "canceled", msg.Canceled, "len", len(msg.Value))
		return m, nil
	case editor.ErrorMsg:
		m.status = fmt.Sprintf("%s: %v", msg.ID, msg.Err)
		return m, nil
	}

	// Internal widget messages carry their widget's identity; each widget
	// ignores the other's.
	var c1, c2 tea.Cmd
	m.title, c1 = m.title.Update(msg)
	m.notes, c2 = m.notes.Update(msg)
	return m, tea.Batch(c1, c2)
}

func (m model) switchFocus() (tea.Model, tea.Cmd) {
	var c1, c2 tea.Cmd
	if m.focus == focusTitle {
		m.focus = focusNotes
		m.title, c1 = m.title.Blur()
		m.notes, c2 = m.notes.Focus()
	} else {
		m.focus = focusTitle
		m.notes, c1 = m.notes.Blur()
		m.title, c2 = m.title.Focus()
	}
	return m, tea.Batch(c1, c2)
}

func (m model) View() string {
	label := titleLabel
	if m.focus == focusTitle {
		label = focusStyle.Render(label)
	}

	c := m.notes.Caret()
	pos := fmt.Sprintf("linear %d  abs %d,%d  rel %d,%d",
		c.Linear(), c.Absolute().X, c.Absolute().Y, c.Relative().X, c.Relative().Y)

	return strings.Join([]string{
		headerStyle.Render("texty " + texty.Tag()),
		label + m.title.View(),
		"",
		m.notes.View(),
		statusStyle.Render(pos),
		statusStyle.Render(m.status),
	}, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func parseWrap(s string) (wrapped.Mode, error) {
	switch s {
	case "word":
		return wrapped.WrapWord, nil
	case "glyph", "grapheme":
		return wrapped.WrapGlyph, nil
	}
	return 0, fmt.Errorf("unknown wrap mode %q (want word or glyph)", s)
}

func openLog(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func main() {
	wide := flag.Bool("wide", true, "treat surrogate pairs and East Asian wide glyphs as double width")
	wrap := flag.String("wrap", "word", "wrap mode: word or glyph")
	value := flag.String("value", "Hello from texty.\n\nPress enter or i to edit, esc to stop.\nWide glyphs: 中文 \U0001F600", "initial text")
	logPath := flag.String("log", "", "write a debug log to this file")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println(texty.Banner("texty-demo"))
		return
	}

	mode, err := parseWrap(*wrap)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, closer, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	p := tea.NewProgram(newModel(*value, *wide, mode, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", "err", err)
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		closer.Close()
		os.Exit(1)
	}
}
