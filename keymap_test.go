package termread

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termread/termread/key"
)

func press(k key.Key) key.Event {
	return key.Event{Type: key.EventKeyPress, Key: k}
}

func TestKeymapDispatch(t *testing.T) {
	km := NewKeymap()

	var fired []string
	record := func(name string) Action {
		return ActionFunc(func(_ context.Context, _ key.Event) {
			fired = append(fired, name)
		})
	}
	km.RegisterAction("quit", record("quit"))
	km.RegisterAction("save", record("save"))
	km.SetDefault(record("default"))

	require.NoError(t, km.Bind("C-x", "quit"))
	require.NoError(t, km.Bind("F2", "save"))

	ctx := context.Background()
	km.ExecuteAction(ctx, press(key.Key{Code: 'x', Mod: key.ModCtrl}))
	km.ExecuteAction(ctx, press(key.Key{Code: key.F2}))
	km.ExecuteAction(ctx, press(key.Key{Code: 'z'}))

	assert.Equal(t, []string{"quit", "save", "default"}, fired)
}

func TestKeymapMatchesOnPrimaryKey(t *testing.T) {
	km := NewKeymap()

	var hits int
	km.RegisterAction("count", ActionFunc(func(_ context.Context, _ key.Event) {
		hits++
	}))
	require.NoError(t, km.Bind("C-a", "count"))

	// alternate codepoints reported by the terminal do not affect
	// binding lookup
	ev := press(key.Key{Code: 'a', Mod: key.ModCtrl, Shifted: 'A', BaseLayout: 'a'})
	km.ExecuteAction(context.Background(), ev)
	assert.Equal(t, 1, hits)
}

func TestKeymapIgnoresNonKeyEvents(t *testing.T) {
	km := NewKeymap()
	km.SetDefault(ActionFunc(func(_ context.Context, _ key.Event) {
		t.Error("default action should not fire for focus events")
	}))

	km.ExecuteAction(context.Background(), key.Event{Type: key.EventFocusIn})
}

func TestKeymapBindErrors(t *testing.T) {
	km := NewKeymap()
	km.RegisterAction("quit", ActionFunc(func(_ context.Context, _ key.Event) {}))

	assert.Error(t, km.Bind("C-x", "no-such-action"))
	assert.Error(t, km.Bind("NoSuchKey", "quit"))
}

func TestKeymapApplyConfig(t *testing.T) {
	km := NewKeymap()

	var fired []string
	km.RegisterAction("quit", ActionFunc(func(_ context.Context, _ key.Event) {
		fired = append(fired, "quit")
	}))

	cfg := Config{Keymap: map[string]string{"M-q": "quit"}}
	require.NoError(t, km.ApplyConfig(&cfg))

	km.ExecuteAction(context.Background(), press(key.Key{Code: 'q', Mod: key.ModAlt}))
	assert.Equal(t, []string{"quit"}, fired)

	cfg = Config{Keymap: map[string]string{"C-c": "no-such-action"}}
	assert.Error(t, km.ApplyConfig(&cfg))
}
