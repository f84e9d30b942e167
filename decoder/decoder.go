// Package decoder turns raw terminal input bytes into key and focus
// events. It implements the input half of the ANSI/VT/xterm escape
// grammar: legacy control characters, SS3 navigation and function
// keys, the general CSI parameter grammar (private indicators,
// intermediates, colon-separated sub-parameters, empty parameters),
// the numeric ~-terminated function key family, and the kitty CSI u
// extended keyboard encoding.
//
// Decode is stateless across calls and always restarts in the ground
// state, so a caller that gets the need-more-bytes result must retry
// with the same prefix grown by fresh input, never with an arbitrary
// reslicing of the stream.
package decoder

import (
	pdebug "github.com/lestrrat-go/pdebug"

	"github.com/termread/termread/key"
)

type parseState int

const (
	stateGround parseState = iota
	stateEscape
	stateCSI
	stateSS3
	stateOSC
	stateDCS
	stateSOS
	statePM
	stateAPC
)

// Decode scans in for the first complete input event, returning the
// event and the number of bytes consumed. A zero n with no event means
// the buffer holds only the prefix of a sequence. A non-zero n with no
// event is a recognized but unsupported sequence the caller should
// skip. An error is fatal for the whole call: a malformed or oversized
// numeric parameter, with resynchronization left to the caller.
func Decode(in []byte) (key.Event, int, error) {
	state := stateGround
	var seq scratch

	for i := 0; i < len(in); i++ {
		b := in[i]

		switch state {
		case stateGround:
			switch {
			case b == 0x00:
				return keyPress(key.Key{Code: '@', Mod: key.ModCtrl}), i + 1, nil
			case b <= 0x1a:
				return keyPress(key.Key{Code: rune(b) + 0x60, Mod: key.ModCtrl}), i + 1, nil
			case b == 0x1b:
				if i == len(in)-1 {
					// a trailing lone ESC is taken to be a real key
					// press, not a truncated sequence
					return keyPress(key.Key{Code: key.Escape}), i + 1, nil
				}
				seq = scratch{}
				state = stateEscape
			case b == 0x7f:
				return keyPress(key.Key{Code: key.Backspace}), i + 1, nil
			case b >= 0x20 && b <= 0x7e:
				return keyPress(key.Key{Code: rune(b)}), i + 1, nil
			default:
				// bytes outside the 7-bit range pass through verbatim;
				// multi-byte decoding happens above this layer
				return keyPress(key.Key{Code: rune(b)}), i + 1, nil
			}

		case stateEscape:
			switch b {
			case 'O':
				state = stateSS3
			case 'P':
				state = stateDCS
			case 'X':
				state = stateSOS
			case '[':
				state = stateCSI
			case ']':
				state = stateOSC
			case '^':
				state = statePM
			case '_':
				state = stateAPC
			default:
				// n stops short of the alt byte: only the leading ESC
				// counts as consumed
				return keyPress(key.Key{Code: rune(b), Mod: key.ModAlt}), i, nil
			}

		case stateSS3:
			k, ok := csiKeys[b]
			if !ok || b == 'E' { // KeypadBegin has no SS3 form
				if pdebug.Enabled {
					pdebug.Printf("decoder: unknown SS3 sequence 0x1bO%c", b)
				}
				return key.Event{}, i, nil
			}
			return keyPress(key.Key{Code: k}), i + 1, nil

		case stateCSI:
			switch {
			case b <= 0x1f:
				// C0 bytes inside a control sequence are ignored
			case b <= 0x2f:
				seq.intermediate = b // only the last intermediate survives
			case b >= '0' && b <= '9':
				if seq.ndigits == maxDigits {
					return key.Event{}, 0, ErrTooManyDigits
				}
				seq.num[seq.ndigits] = b
				seq.ndigits++
			case b == ';':
				if err := seq.flushParam(true); err != nil {
					return key.Event{}, 0, err
				}
			case b == ':':
				if err := seq.flushParam(true); err != nil {
					return key.Event{}, 0, err
				}
				// the separator marks the next slot, not the one just
				// closed
				if seq.nparams < maxParams {
					seq.subState |= 1 << seq.nparams
				}
			case b <= 0x3f:
				seq.private = b
			default:
				// anything 0x40 and above terminates the sequence
				if err := seq.flushParam(false); err != nil {
					return key.Event{}, 0, err
				}
				state = stateGround
				return dispatchCSI(&seq, b, i)
			}

		case stateOSC, stateDCS, stateSOS, statePM, stateAPC:
			// the payload is not interpreted; scan to the string
			// terminator so the caller can skip the whole sequence
			switch b {
			case 0x07, 0x9c:
				return key.Event{}, i + 1, nil
			case 0x1b:
				if i+1 == len(in) {
					return key.Event{}, 0, nil
				}
				if in[i+1] == '\\' {
					return key.Event{}, i + 2, nil
				}
			}
		}
	}

	return key.Event{}, 0, nil
}

// dispatchCSI resolves a completed control sequence. i is the offset of
// the final byte within the buffer passed to Decode.
func dispatchCSI(seq *scratch, b byte, i int) (key.Event, int, error) {
	switch b {
	case '~':
		var code uint16
		if seq.nparams > 0 {
			code = seq.params[0]
		}
		if code == pasteStart || code == pasteEnd {
			return key.Event{}, i + 1, nil
		}
		c, ok := tildeKeys[code]
		if !ok {
			if pdebug.Enabled {
				pdebug.Printf("decoder: unknown function key code %d", code)
			}
			return key.Event{}, i, nil
		}
		k := key.Key{Code: c}
		seq.applyKeyParams(&k)
		return keyPress(k), i + 1, nil

	case 'u':
		if seq.private != 0 {
			// a protocol response to a query we did not issue; skip it
			if pdebug.Enabled {
				pdebug.Printf("decoder: dropping CSI %c ... u response", seq.private)
			}
			return key.Event{}, i + 1, nil
		}
		var code uint16
		if seq.nparams > 0 {
			code = seq.params[0]
		}
		k := key.Key{Code: rune(code)}
		seq.applyKeyParams(&k)
		return keyPress(k), i + 1, nil

	case 'I':
		return key.Event{Type: key.EventFocusIn}, i + 1, nil

	case 'O':
		return key.Event{Type: key.EventFocusOut}, i + 1, nil
	}

	if c, ok := csiKeys[b]; ok {
		k := key.Key{Code: c}
		seq.applyKeyParams(&k)
		return keyPress(k), i + 1, nil
	}

	if pdebug.Enabled {
		pdebug.Printf("decoder: unhandled CSI terminator %c", b)
	}
	return key.Event{}, i, nil
}

func keyPress(k key.Key) key.Event {
	return key.Event{Type: key.EventKeyPress, Key: k}
}
