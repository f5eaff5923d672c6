package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func BenchmarkCaretMove(b *testing.B) {
	for _, lines := range []int{100, 1000, 3000} {
		doc := benchmarkDoc(lines)

		for _, wide := range []bool{false, true} {
			b.Run(fmt.Sprintf("wide=%v/lines=%d", wide, lines), func(b *testing.B) {
				m := NewTextarea(Config{Value: doc, WideMode: wide}).SetSize(160, 40)
				m, cmd := m.ReadInput()
				m, _ = send(m, collect(cmd)...)
				benchmarkPingPong(b, m)
			})
		}
	}
}

func benchmarkPingPong(b *testing.B, m Textarea) {
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			m, _ = m.Update(up)
		} else {
			m, _ = m.Update(down)
		}
	}
}

func benchmarkDoc(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "line %04d: the quick brown fox 中文 \U0001F600 jumps over the lazy dog", i)
	}
	return sb.String()
}
