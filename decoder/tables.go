package decoder

import "github.com/termread/termread/key"

// csiKeys maps control sequence final bytes to navigation and function
// keys. SS3 shares this table, minus the KeypadBegin entry which has no
// SS3 form.
var csiKeys = map[byte]rune{
	'A': key.Up,
	'B': key.Down,
	'C': key.Right,
	'D': key.Left,
	'E': key.KpBegin,
	'F': key.End,
	'H': key.Home,
	'P': key.F1,
	'Q': key.F2,
	'R': key.F3,
	'S': key.F4,
}

// tildeKeys maps the leading numeric parameter of a ~-terminated
// sequence to a key.
var tildeKeys = map[uint16]rune{
	2:     key.Insert,
	3:     key.Delete,
	5:     key.PgUp,
	6:     key.PgDown,
	7:     key.Home,
	8:     key.End,
	11:    key.F1,
	12:    key.F2,
	13:    key.F3,
	14:    key.F4,
	15:    key.F5,
	17:    key.F6,
	18:    key.F7,
	19:    key.F8,
	20:    key.F9,
	21:    key.F10,
	23:    key.F11,
	24:    key.F12,
	57427: key.KpBegin,
}

// Bracketed paste markers. The decoder scans past them; paste payload
// handling belongs to the read loop.
const (
	pasteStart = 200
	pasteEnd   = 201
)
