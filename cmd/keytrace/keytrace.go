// keytrace puts the terminal in raw mode and prints one line per
// decoded input event. It is a diagnostic tool for inspecting what a
// terminal emulator actually sends.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/termread/termread"
	"github.com/termread/termread/key"
)

var version = "v0.1.0"

func main() {
	os.Exit(_main())
}

func _main() int {
	var opts termread.CLIOptions
	if _, err := opts.Parse(os.Args[1:]); err != nil {
		return 1
	}

	if opts.OptVersion {
		fmt.Printf("keytrace version %s\n", version)
		return 0
	}

	var cfg termread.Config
	if err := cfg.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if opts.OptRcfile != "" {
		if err := cfg.ReadFilename(opts.OptRcfile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	in := os.Stdin
	if opts.OptTTY != "" {
		f, err := os.Open(opts.OptTTY)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %s\n", opts.OptTTY, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %s\n", err)
		return 1
	}
	defer term.Restore(fd, state)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	km := termread.NewKeymap()
	km.RegisterAction("quit", termread.ActionFunc(func(_ context.Context, _ key.Event) {
		cancel()
	}))
	km.RegisterAction("trace", termread.ActionFunc(trace))
	km.SetDefault(termread.ActionFunc(trace))
	if err := km.ApplyConfig(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, bound := cfg.Keymap["C-c"]; !bound {
		if err := km.Bind("C-c", "quit"); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	fmt.Print("press keys to trace them, C-c quits\r\n")

	r := termread.NewReader(in, cfg.EventBufferSize)
	go r.Loop(ctx, cancel)

	for {
		select {
		case <-ctx.Done():
			return 0
		case ev, ok := <-r.EventCh():
			if !ok {
				return 0
			}
			if ev.Type == key.EventKeyPress {
				km.ExecuteAction(ctx, ev)
			} else {
				trace(ctx, ev)
			}
		}
	}
}

func trace(_ context.Context, ev key.Event) {
	name, err := key.DB.Format(ev)
	if err != nil {
		name = fmt.Sprintf("%#v", ev)
	}
	fmt.Printf("%s %s\r\n", runewidth.FillRight(name, 16), detail(ev))
}

func detail(ev key.Event) string {
	if ev.Type != key.EventKeyPress {
		return ""
	}

	k := ev.Key
	s := fmt.Sprintf("code=U+%04X mod=%08b", k.Code, k.Mod)
	if k.Shifted != 0 {
		s += fmt.Sprintf(" shifted=U+%04X", k.Shifted)
	}
	if k.BaseLayout != 0 {
		s += fmt.Sprintf(" base=U+%04X", k.BaseLayout)
	}
	return s
}
