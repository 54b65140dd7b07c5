package powerdown

import (
	"time"

	"powersave-go/errcode"
	"powersave-go/x/mathx"
	"powersave-go/x/timex"
)

// Profile selects the timeout table matching the supply voltage. The
// watchdog oscillator runs slower at lower VCC.
type Profile uint8

const (
	Voltage3V Profile = iota
	Voltage5V
)

func (p Profile) String() string {
	switch p {
	case Voltage3V:
		return "3V"
	case Voltage5V:
		return "5V"
	default:
		return "unknown"
	}
}

func (p Profile) Valid() bool { return p <= Voltage5V }

// Class is a watchdog timeout class index.
type Class uint8

const (
	MinClass   Class = 0
	MaxClass   Class = 7
	NumClasses       = int(MaxClass) + 1
)

// Table holds the typical timeout of each class in microseconds.
type Table [NumClasses]uint32

// Typical time-outs from the ATmega328P datasheet (WDT prescaler table).
var (
	table3V = Table{17100, 34300, 68500, 140000, 270000, 550000, 1100000, 2200000}
	table5V = Table{16300, 32500, 65000, 130000, 260000, 520000, 1000000, 2100000}
)

// TableFor returns the timeout table for p.
func TableFor(p Profile) (Table, error) {
	switch p {
	case Voltage3V:
		return table3V, nil
	case Voltage5V:
		return table5V, nil
	default:
		return Table{}, errcode.UnknownProfile
	}
}

// Smallest returns the shortest timeout, the precision floor of a plan.
func (t Table) Smallest() uint32 { return t[MinClass] }

// Duration returns the timeout of class c; c is clamped to MaxClass.
func (t Table) Duration(c Class) time.Duration {
	return timex.UsToDuration(uint64(t[clampClass(c)]))
}

// Supply voltage limits of the ATmega328P and the 3V/5V decision point.
const (
	minSupplyMilliV   = 1800
	maxSupplyMilliV   = 5500
	splitSupplyMilliV = 4000
)

// ProfileFor picks the characterised profile nearest to a supply voltage.
func ProfileFor(milliV uint32) (Profile, error) {
	if !mathx.Between(milliV, minSupplyMilliV, maxSupplyMilliV) {
		return 0, errcode.Wrap(errcode.InvalidParams, "powerdown.ProfileFor", "supply out of range")
	}
	if milliV < splitSupplyMilliV {
		return Voltage3V, nil
	}
	return Voltage5V, nil
}

func clampClass(c Class) Class { return mathx.Clamp(c, MinClass, MaxClass) }
