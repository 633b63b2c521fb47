package elevio

import (
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"twinlift/src/types"
)

// fakePanel answers the 4-byte protocol and remembers the last write per command.
type fakePanel struct {
	mu     sync.Mutex
	analog int
	line   bool
	writes map[byte][4]byte
}

func (f *fakePanel) serve(t *testing.T, ln net.Listener) {
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		var in [4]byte
		if _, err := io.ReadFull(conn, in[:]); err != nil {
			return
		}
		f.mu.Lock()
		switch in[0] {
		case 6:
			conn.Write([]byte{6, byte(f.analog >> 8), byte(f.analog), 0})
		case 7:
			conn.Write([]byte{7, toByte(f.line), 0, 0})
		default:
			f.writes[in[0]] = in
		}
		f.mu.Unlock()
	}
}

func (f *fakePanel) set(analog int, line bool) {
	f.mu.Lock()
	f.analog, f.line = analog, line
	f.mu.Unlock()
}

func (f *fakePanel) last(cmd byte) [4]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes[cmd]
}

func TestDriver(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	fake := &fakePanel{writes: make(map[byte][4]byte)}
	go fake.serve(t, ln)

	if err := Init(ln.Addr().String()); err != nil {
		t.Fatalf("Init() returned %v", err)
	}

	fake.set(910, false)
	var p Panel
	if got := p.ReadAnalog(); got != 910 {
		t.Errorf("ReadAnalog() = %d, expected 910", got)
	}

	edges := make(chan struct{}, 4)
	go PollEdges(edges)
	fake.set(730, true)
	select {
	case <-edges:
	case <-time.After(time.Second):
		t.Fatal("no edge reported for rising line")
	}

	p.SetTone(1760)
	p.SetFloorIndicator(types.Elevator2, 0b10)
	p.SetDirectionIndicators(types.Elevator1, true, false)
	p.SetEmergencyLamp(true)
	// a read round-trip orders the writes before the checks below
	p.ReadAnalog()

	expected := map[byte][4]byte{
		1: {1, 0x06, 0xe0, 0},
		2: {2, byte(types.Elevator1), 1, 0},
		3: {3, byte(types.Elevator2), 0b10, 0},
		5: {5, 1, 0, 0},
	}
	for cmd, want := range expected {
		if got := fake.last(cmd); got != want {
			t.Errorf("command %d wrote %v, expected %v", cmd, got, want)
		}
	}
}
