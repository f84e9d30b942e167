package termread

import (
	"context"

	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"

	"github.com/termread/termread/key"
)

// Execute calls f(ctx, ev). Fulfills Action
func (f ActionFunc) Execute(ctx context.Context, ev key.Event) {
	f(ctx, ev)
}

// NewKeymap creates an empty Keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		binding: make(map[key.Key]Action),
		actions: make(map[string]Action),
	}
}

// RegisterAction makes an action available to keymap configuration
// under the given name.
func (km *Keymap) RegisterAction(name string, a Action) {
	km.mutex.Lock()
	defer km.mutex.Unlock()
	km.actions[name] = a
}

// SetDefault sets the action executed for key presses that have no
// binding.
func (km *Keymap) SetDefault(a Action) {
	km.mutex.Lock()
	defer km.mutex.Unlock()
	km.def = a
}

// Bind binds a key name such as "C-x", "M-Enter" or "F5" to a
// registered action name.
func (km *Keymap) Bind(keyName, actionName string) error {
	k, err := key.DB.Parse(keyName)
	if err != nil {
		return errors.Wrapf(err, "failed to bind %q", keyName)
	}

	km.mutex.Lock()
	defer km.mutex.Unlock()

	a, ok := km.actions[actionName]
	if !ok {
		return errors.Errorf("unknown action '%s'", actionName)
	}
	km.binding[k] = a
	return nil
}

// ApplyConfig installs every binding in the configuration.
func (km *Keymap) ApplyConfig(cfg *Config) error {
	for kn, an := range cfg.Keymap {
		if err := km.Bind(kn, an); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteAction dispatches ev against the bindings.
func (km *Keymap) ExecuteAction(ctx context.Context, ev key.Event) {
	if pdebug.Enabled {
		g := pdebug.Marker("Keymap.ExecuteAction %v", ev)
		defer g.End()
	}

	if a := km.LookupAction(ev); a != nil {
		a.Execute(ctx, ev)
	}
}

// LookupAction returns the action bound to the event's key, falling
// back to the default action. Only key presses resolve to actions.
func (km *Keymap) LookupAction(ev key.Event) Action {
	if ev.Type != key.EventKeyPress {
		return nil
	}

	km.mutex.Lock()
	defer km.mutex.Unlock()

	// bindings match on the primary codepoint and modifiers alone; the
	// alternate codepoints are advisory
	k := key.Key{Code: ev.Key.Code, Mod: ev.Key.Mod}
	if a, ok := km.binding[k]; ok {
		return a
	}
	return km.def
}
