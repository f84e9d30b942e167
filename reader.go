package termread

import (
	"context"
	"io"

	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"

	"github.com/termread/termread/decoder"
	"github.com/termread/termread/key"
)

// NewReader creates a Reader decoding events out of src. bufsiz is the
// event channel capacity; zero or less selects the default.
func NewReader(src io.Reader, bufsiz int) *Reader {
	if bufsiz <= 0 {
		bufsiz = DefaultEventBufferSize
	}
	return &Reader{
		src:    src,
		events: make(chan key.Event, bufsiz),
	}
}

// EventCh returns the channel decoded events are delivered on. It is
// closed when Loop returns.
func (r *Reader) EventCh() <-chan key.Event {
	return r.events
}

// Loop keeps reading from the source until EOF or cancellation,
// delivering decoded events on the event channel.
//
// The buffer contract follows the decoder: when a decode consumes
// nothing, the buffered prefix is kept intact and grown by the next
// read; consumed bytes are dropped exactly once.
func (r *Reader) Loop(ctx context.Context, cancel func()) error {
	defer cancel()
	defer close(r.events)

	chunk := make([]byte, readChunkSize)
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := r.src.Read(chunk)
		if n > 0 {
			r.buf = append(r.buf, chunk[:n]...)
			if !r.drain(ctx) {
				return nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "failed to read input")
		}
	}
}

// drain decodes as many complete events as the buffer holds, reporting
// false once the context is canceled.
func (r *Reader) drain(ctx context.Context) bool {
	for len(r.buf) > 0 {
		ev, n, err := decoder.Decode(r.buf)
		if err != nil {
			// resynchronize: replaying poisoned bytes can never succeed
			if pdebug.Enabled {
				pdebug.Printf("reader: dropping %d buffered bytes: %s", len(r.buf), err)
			}
			r.buf = r.buf[:0]
			return true
		}
		if n == 0 {
			// incomplete sequence, wait for more bytes
			return true
		}
		r.buf = r.buf[n:]

		if ev.Type == key.EventNone {
			// recognized but unsupported, skipped
			continue
		}
		select {
		case r.events <- ev:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
