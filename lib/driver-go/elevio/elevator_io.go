// This file defines types and functions for interfacing with the button panel
// hardware. It establishes a TCP connection with the panel server, which owns the
// analog input pin, the edge line, the buzzer and the indicator LEDs.
package elevio

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"twinlift/src/config"
	"twinlift/src/types"
)

var (
	_initialized bool = false
	_mtx         sync.Mutex
	_conn        net.Conn
)

// Initializes the TCP connection to the panel server
func Init(addr string) error {
	if _initialized {
		fmt.Println("Driver already initialized!")
		return nil
	}
	_mtx = sync.Mutex{}
	var err error
	_conn, err = net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to panel %s: %w", addr, err)
	}
	_initialized = true
	return nil
}

func SetTone(hz int) {
	write([4]byte{1, byte(hz >> 8), byte(hz), 0})
}

func SetDirectionIndicators(car types.Source, up, down bool) {
	write([4]byte{2, byte(car), toByte(up), toByte(down)})
}

func SetFloorIndicator(car types.Source, bits uint8) {
	write([4]byte{3, byte(car), bits, 0})
}

func SetEmergencyLamp(value bool) {
	write([4]byte{5, toByte(value), 0, 0})
}

// ReadAnalog samples the multiplexed button pin. The value is 10 bits wide.
func ReadAnalog() int {
	a := read([4]byte{6, 0, 0, 0})
	return int(a[1])<<8 | int(a[2])
}

// GetEdgeLine reads the digital line that goes high while any button is held.
func GetEdgeLine() bool {
	a := read([4]byte{7, 0, 0, 0})
	return toBool(a[1])
}

// PollEdges sends on receiver for every rising edge of the button line.
func PollEdges(receiver chan<- struct{}) {
	prev := false
	for {
		time.Sleep(config.SensorPollRate)
		v := GetEdgeLine()
		if v && !prev {
			receiver <- struct{}{}
		}
		prev = v
	}
}

// Panel adapts the package functions to the notifier and sampler interfaces.
type Panel struct{}

func (Panel) SetTone(hz int)                                 { SetTone(hz) }
func (Panel) SetFloorIndicator(car types.Source, bits uint8) { SetFloorIndicator(car, bits) }
func (Panel) SetDirectionIndicators(car types.Source, up, down bool) {
	SetDirectionIndicators(car, up, down)
}
func (Panel) SetEmergencyLamp(on bool) { SetEmergencyLamp(on) }
func (Panel) ReadAnalog() int          { return ReadAnalog() }

func read(in [4]byte) [4]byte {
	_mtx.Lock()
	defer _mtx.Unlock()

	_, err := _conn.Write(in[:])
	if err != nil {
		panic("Lost connection to Panel Server")
	}

	var out [4]byte
	_, err = io.ReadFull(_conn, out[:])
	if err != nil {
		panic("Lost connection to Panel Server")
	}

	return out
}

func write(in [4]byte) {
	_mtx.Lock()
	defer _mtx.Unlock()

	_, err := _conn.Write(in[:])
	if err != nil {
		panic("Lost connection to Panel Server")
	}
}

func toByte(a bool) byte {
	var b byte = 0
	if a {
		b = 1
	}
	return b
}

func toBool(a byte) bool {
	var b bool = false
	if a != 0 {
		b = true
	}
	return b
}
