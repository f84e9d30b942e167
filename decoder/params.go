package decoder

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/termread/termread/key"
)

const (
	maxParams = 16
	maxDigits = 8
)

// Fatal decode errors. Everything else the decoder does not understand
// is logged and skipped, never surfaced to the event consumer.
var (
	ErrTooManyParams = errors.New("control sequence exceeds parameter capacity")
	ErrTooManyDigits = errors.New("control sequence parameter exceeds digit capacity")
)

// scratch is the working state of one control sequence being scanned.
// It is reset on every entry into the escape state and lives only for
// the duration of a single Decode call.
type scratch struct {
	private      byte
	intermediate byte

	params  [maxParams]uint16
	nparams int

	num     [maxDigits]byte
	ndigits int

	subState   uint16 // bit i set: params[i] is a sub-parameter of params[i-1]
	emptyState uint16 // bit i set: params[i] was an empty, defaulted slot
}

// flushParam closes the pending digit run into the next parameter slot.
// An empty run only produces a slot when forced by a separator.
func (s *scratch) flushParam(forced bool) error {
	if s.ndigits == 0 {
		if !forced {
			return nil
		}
		if s.nparams == maxParams {
			return ErrTooManyParams
		}
		s.emptyState |= 1 << s.nparams
		s.params[s.nparams] = 0
		s.nparams++
		return nil
	}

	if s.nparams == maxParams {
		return ErrTooManyParams
	}
	v, err := strconv.ParseUint(string(s.num[:s.ndigits]), 10, 16)
	if err != nil {
		return errors.Wrap(err, "failed to parse control sequence parameter")
	}
	s.params[s.nparams] = uint16(v)
	s.nparams++
	s.ndigits = 0
	return nil
}

// applyKeyParams is the post-scan pass over the captured parameter
// list. Sub-parameters chained onto the first slot carry the shifted
// and base layout codepoints; the slot after the chain carries the
// modifier bit set, wire-encoded as value+1.
func (s *scratch) applyKeyParams(k *key.Key) {
	idx := 1
	alt := 0
	for idx < s.nparams && s.subState&(1<<idx) != 0 {
		if s.emptyState&(1<<idx) == 0 {
			switch alt {
			case 0:
				k.Shifted = rune(s.params[idx])
			case 1:
				k.BaseLayout = rune(s.params[idx])
			}
			alt++
		}
		idx++
	}

	// the modifier slot counts whether or not it arrived as a
	// sub-parameter; an empty slot means no modifiers
	if idx < s.nparams {
		if v := s.params[idx]; v > 0 {
			k.Mod = key.ModifierKey(v - 1)
		}
	}
}
