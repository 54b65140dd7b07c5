// Package boards picks the sleep hardware for the build target. Exactly one
// board file is compiled in, chosen by build tags:
//
//	tinygo flash -target=arduino ./cmd/sensor-node            # 5 V ATmega328P
//	tinygo flash -target=arduino -tags=lowvolt ./cmd/...      # 3.3 V ATmega328P
//
// Host builds get a simulated 5 V ATmega328P that sleeps in real time.
package boards

import (
	"powersave-go/errcode"
	"powersave-go/powerdown"
)

// CPU identifies a processor family with a powerdown backend.
type CPU uint8

const (
	CPUUnknown CPU = iota
	CPUATmega328
)

func (c CPU) String() string {
	switch c {
	case CPUATmega328:
		return "atmega328"
	default:
		return "unknown"
	}
}

// Board describes the chip and supply of a build target. It must not
// include application wiring.
type Board struct {
	Name         string
	CPU          CPU
	SupplyMilliV uint32
}

// Open constructs powerdown for the selected board.
func Open() (*powerdown.Powerdown, error) { return OpenBoard(Selected) }

// OpenBoard constructs powerdown for b. Unsupported processors and supply
// voltages fail here rather than at the first sleep.
func OpenBoard(b Board) (*powerdown.Powerdown, error) {
	profile, err := powerdown.ProfileFor(b.SupplyMilliV)
	if err != nil {
		return nil, err
	}
	hw, err := newHardware(b.CPU, profile)
	if err != nil {
		return nil, err
	}
	return powerdown.New(hw, profile)
}

func errUnknownCPU(c CPU) error {
	return errcode.Wrap(errcode.UnknownCPU, "boards.Open", c.String())
}
