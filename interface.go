// Package termread decodes raw terminal input into key and focus
// events and dispatches them against user-configurable keymaps. The
// escape sequence grammar itself lives in the decoder subpackage; the
// result vocabulary lives in the key subpackage.
package termread

import (
	"context"
	"io"
	"sync"

	"github.com/termread/termread/key"
)

const (
	// DefaultEventBufferSize is the capacity of a Reader's event channel
	DefaultEventBufferSize = 64

	// readChunkSize is how many bytes we ask the source for at a time
	readChunkSize = 256
)

// Reader owns the raw input buffer and pumps decoded events to its
// consumer. The unconsumed tail of the buffer always starts at a
// sequence boundary.
type Reader struct {
	src    io.Reader
	buf    []byte
	events chan key.Event
}

// Action is the interface of keymap handlers.
type Action interface {
	Execute(ctx context.Context, ev key.Event)
}

// ActionFunc is an adapter to allow the use of ordinary functions as
// Actions.
type ActionFunc func(ctx context.Context, ev key.Event)

// Keymap maps decoded keys to registered Actions.
type Keymap struct {
	mutex   sync.Mutex
	binding map[key.Key]Action
	actions map[string]Action
	def     Action
}

// Config holds all the data that can be configured in the external
// configuration file.
type Config struct {
	// Keymap records the user's bindings as key name to action name
	Keymap map[string]string `yaml:"Keymap"`

	// EventBufferSize is the capacity of the Reader event channel
	EventBufferSize int `yaml:"EventBufferSize"`
}

// CLIOptions are the command line options for keytrace.
type CLIOptions struct {
	OptTTY     string `long:"tty" description:"path to the TTY (usually, the value of $TTY)"`
	OptRcfile  string `long:"rcfile" description:"path to the settings file"`
	OptVersion bool   `long:"version" description:"print the version and exit"`
}
