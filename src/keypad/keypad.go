// Package keypad lets a terminal stand in for the analog button ladder. Keys
// 0-8 press the matching button, e toggles the emergency, q quits.
package keypad

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eiannone/keyboard"

	"twinlift/src/input"
	"twinlift/src/types"
)

// Released is the sample the ladder gives with no button held.
const Released = 1023

type Keypad struct {
	mu  sync.Mutex
	raw int
}

func New() *Keypad {
	return &Keypad{raw: Released}
}

func (k *Keypad) ReadAnalog() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.raw
}

// Press holds btn on the ladder until the next press.
func (k *Keypad) Press(btn types.ButtonID) {
	k.mu.Lock()
	k.raw = input.Nominal(btn)
	k.mu.Unlock()
}

// Run reads keys until ctx is done or the quit key is hit. Every button key
// raises one edge.
func (k *Keypad) Run(ctx context.Context, edges chan<- struct{}) error {
	keys, err := keyboard.GetKeys(8)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return fmt.Errorf("read key: %w", ev.Err)
			}
			if Quit(ev.Rune, ev.Key) {
				slog.Info("Quit key pressed")
				return nil
			}
			btn, ok := KeyToButton(ev.Rune)
			if !ok {
				continue
			}
			k.Press(btn)
			slog.Debug("Key pressed", "key", string(ev.Rune), "button", btn)
			select {
			case edges <- struct{}{}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func KeyToButton(r rune) (types.ButtonID, bool) {
	switch {
	case r >= '0' && r <= '8':
		return types.ButtonID(r - '0'), true
	case r == 'e' || r == 'E':
		return types.BtnEmergency, true
	}
	return 0, false
}

func Quit(r rune, key keyboard.Key) bool {
	return r == 'q' || r == 'Q' || key == keyboard.KeyCtrlC || key == keyboard.KeyEsc
}

// Help lists the key bindings.
func Help() string {
	s := "keys:"
	for btn := types.BtnE1Close; btn <= types.BtnEmergency; btn++ {
		s += fmt.Sprintf(" %d=%v", int(btn), btn)
	}
	return s + " e=Emergency q=quit"
}
