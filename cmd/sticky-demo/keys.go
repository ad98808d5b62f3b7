package main

// action is a scroll command decoded from terminal input.
type action int

const (
	actionNone action = iota
	actionLineDown
	actionLineUp
	actionPageDown
	actionPageUp
	actionTop
	actionBottom
	actionQuit
)

// csiActions maps the final bytes of CSI sequences (ESC [ ...) to actions.
var csiActions = map[string]action{
	"A":  actionLineUp,
	"B":  actionLineDown,
	"H":  actionTop,
	"F":  actionBottom,
	"5~": actionPageUp,
	"6~": actionPageDown,
	"1~": actionTop,
	"4~": actionBottom,
}

// parseKeys decodes raw terminal input into actions. Unknown input is
// skipped.
func parseKeys(data []byte) []action {
	var out []action
	for i := 0; i < len(data); {
		b := data[i]
		if b == 0x1b {
			if i+2 < len(data) && (data[i+1] == '[' || data[i+1] == 'O') {
				// Read parameter bytes up to the final byte.
				j := i + 2
				for j < len(data) && data[j] >= 0x20 && data[j] < 0x40 {
					j++
				}
				if j < len(data) {
					if a, ok := csiActions[string(data[i+2:j+1])]; ok {
						out = append(out, a)
					}
					i = j + 1
					continue
				}
			}
			// Lone escape quits like q.
			out = append(out, actionQuit)
			i++
			continue
		}

		switch b {
		case 'q', 0x03:
			out = append(out, actionQuit)
		case 'j', '\r', '\n':
			out = append(out, actionLineDown)
		case 'k':
			out = append(out, actionLineUp)
		case ' ', 'f', 0x06:
			out = append(out, actionPageDown)
		case 'b', 0x02:
			out = append(out, actionPageUp)
		case 'g':
			out = append(out, actionTop)
		case 'G':
			out = append(out, actionBottom)
		}
		i++
	}
	return out
}
