package key

import "strings"

// ModifierKey is a bit set of key modifiers. The bit layout matches the
// kitty keyboard protocol wire encoding: CSI u sequences carry
// ModifierKey+1 in their modifier parameter.
type ModifierKey int

const (
	ModNone     ModifierKey = 0
	ModShift    ModifierKey = 1 << 0 // 0x01
	ModAlt      ModifierKey = 1 << 1 // 0x02
	ModCtrl     ModifierKey = 1 << 2 // 0x04
	ModSuper    ModifierKey = 1 << 3 // 0x08
	ModHyper    ModifierKey = 1 << 4 // 0x10
	ModMeta     ModifierKey = 1 << 5 // 0x20
	ModCapsLock ModifierKey = 1 << 6 // 0x40
	ModNumLock  ModifierKey = 1 << 7 // 0x80
)

// Symbolic key codes. Keys without a C0 representation use the kitty
// functional key numbering, so a codepoint reported by a CSI u sequence
// maps to a Key code with no translation step.
const (
	Tab       rune = 0x09
	Enter     rune = 0x0d
	Escape    rune = 0x1b
	Space     rune = 0x20
	Backspace rune = 0x7f

	Insert rune = 57348
	Delete rune = 57349
	Left   rune = 57350
	Right  rune = 57351
	Up     rune = 57352
	Down   rune = 57353
	PgUp   rune = 57354
	PgDown rune = 57355
	Home   rune = 57356
	End    rune = 57357

	F1  rune = 57364
	F2  rune = 57365
	F3  rune = 57366
	F4  rune = 57367
	F5  rune = 57368
	F6  rune = 57369
	F7  rune = 57370
	F8  rune = 57371
	F9  rune = 57372
	F10 rune = 57373
	F11 rune = 57374
	F12 rune = 57375

	KpBegin rune = 57427
)

// Key is a single decoded key press.
type Key struct {
	// Code is the primary codepoint: a Unicode scalar for text keys, or
	// one of the symbolic constants above
	Code rune

	// Mod is the modifier bit set held during the press
	Mod ModifierKey

	// Shifted is the codepoint the key produces with Shift applied,
	// when the terminal reported one. Zero otherwise
	Shifted rune

	// BaseLayout is the codepoint of the same physical key in the
	// standard layout, when the terminal reported one. Zero otherwise
	BaseLayout rune
}

func (m ModifierKey) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "C")
	}
	if m&ModShift != 0 {
		parts = append(parts, "S")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "M")
	}
	if m&ModSuper != 0 {
		parts = append(parts, "s")
	}
	if m&ModHyper != 0 {
		parts = append(parts, "H")
	}
	if m&ModMeta != 0 {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "-")
}

func (k Key) String() string {
	s, ok := DB.k2s[k.Code]
	if !ok {
		s = string([]rune{k.Code})
	}
	if m := k.Mod.String(); m != "" {
		return m + "-" + s
	}
	return s
}
