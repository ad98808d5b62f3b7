package sticky

import "strings"

// sanitizeText drops control characters and turns tabs into spaces so text
// items never emit terminal control sequences.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune('\n')
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// wrapText breaks text into rows no wider than width cells. Lines break at
// spaces when possible; words wider than a row are split.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	if text == "" {
		return []string{""}
	}

	var rows []string
	for _, para := range strings.Split(text, "\n") {
		rows = append(rows, wrapLine(para, width)...)
	}
	return rows
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		rows []string
		row  strings.Builder
		col  int
	)
	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for _, word := range words {
		w := stringWidth(word)
		if col > 0 && col+1+w > width {
			flush()
		}
		if col > 0 {
			row.WriteRune(' ')
			col++
		}
		for _, r := range word {
			rw := RuneWidth(r)
			if col+rw > width && col > 0 {
				flush()
			}
			row.WriteRune(r)
			col += rw
		}
	}
	if row.Len() > 0 {
		flush()
	}
	return rows
}

func stringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
