package editor

import (
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/text/unicode/norm"
)

// Clipboard is the source of the Paste binding.
type Clipboard interface {
	ReadText() (string, error)
}

// normalizeExternal prepares text from outside the widget for the buffer:
// line endings become '\n', the text is NFC-composed and rejected control
// runes are dropped.
func normalizeExternal(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return stripControls(norm.NFC.String(s))
}

// SystemClipboard reads the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
