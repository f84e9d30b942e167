package key

import (
	"fmt"

	"github.com/pkg/errors"
)

// KeyDB maps between key names as written in configuration files and
// key codes.
type KeyDB struct {
	s2k map[string]rune
	k2s map[rune]string
}

// DB is the global key db
var DB = &KeyDB{
	s2k: make(map[string]rune),
	k2s: make(map[rune]string),
}

func (db *KeyDB) Map(n string, k rune) {
	// key->string can only have one mapping
	if _, ok := db.k2s[k]; !ok {
		db.k2s[k] = n
	}

	// Multiple string representations can be mapped to the same key
	db.s2k[n] = k
}

func init() {
	for i := 0; i < 12; i++ {
		DB.Map(fmt.Sprintf("F%d", i+1), F1+rune(i))
	}

	names := []struct {
		name string
		code rune
	}{
		{"Insert", Insert},
		{"Delete", Delete},
		{"Home", Home},
		{"End", End},
		{"Pgup", PgUp},
		{"Pgdn", PgDown},
		{"ArrowUp", Up},
		{"ArrowDown", Down},
		{"ArrowLeft", Left},
		{"ArrowRight", Right},
		{"KpBegin", KpBegin},
	}
	for _, n := range names {
		DB.Map(n.name, n.code)
	}

	DB.Map("BS", Backspace)
	DB.Map("Tab", Tab)
	DB.Map("Enter", Enter)
	DB.Map("Esc", Escape)
	DB.Map("Space", Space)
}

// Parse resolves a key name as used in keymap configuration into a Key.
// Modifier prefixes C-, S-, M- may be stacked in any order.
func (db *KeyDB) Parse(name string) (Key, error) {
	var k Key

	rest := name
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C':
			k.Mod |= ModCtrl
		case 'S':
			k.Mod |= ModShift
		case 'M':
			k.Mod |= ModAlt
		default:
			return k, errors.Errorf("unknown modifier prefix %q in %q", rest[:2], name)
		}
		rest = rest[2:]
	}

	if code, ok := db.s2k[rest]; ok {
		k.Code = code
		return k, nil
	}

	r := []rune(rest)
	if len(r) != 1 {
		return k, errors.Errorf("no such key %q", name)
	}
	k.Code = r[0]
	return k, nil
}

// Format renders an event for display. For key presses it is the
// inverse of Parse whenever the key has a name in the database.
func (db *KeyDB) Format(ev Event) (string, error) {
	switch ev.Type {
	case EventFocusIn:
		return "FocusIn", nil
	case EventFocusOut:
		return "FocusOut", nil
	case EventKeyPress:
		return ev.Key.String(), nil
	}
	return "", errors.Errorf("no such event %#v", ev)
}
