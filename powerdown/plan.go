package powerdown

import (
	"time"

	"powersave-go/x/mathx"
	"powersave-go/x/timex"
)

// Plan holds how many times each timeout class fires for one request.
type Plan [NumClasses]uint32

// Plan decomposes ms into repeat counts, longest class first. The remainder
// below the smallest class is dropped.
func (t Table) Plan(ms uint32) Plan {
	var p Plan
	remaining := timex.MsToUs(ms)
	for c := int(MaxClass); c >= int(MinClass); c-- {
		n, rem := mathx.DivRem(remaining, uint64(t[c]))
		p[c] = uint32(n)
		remaining = rem
	}
	return p
}

// NewPlan plans ms against the table of profile.
func NewPlan(ms uint32, profile Profile) (Plan, error) {
	t, err := TableFor(profile)
	if err != nil {
		return Plan{}, err
	}
	return t.Plan(ms), nil
}

// Total returns the planned sleep time in microseconds.
func (p Plan) Total(t Table) uint64 {
	var us uint64
	for c, n := range p {
		us += uint64(n) * uint64(t[c])
	}
	return us
}

func (p Plan) Duration(t Table) time.Duration { return timex.UsToDuration(p.Total(t)) }

// Cycles returns the number of hardware sleep cycles in the plan.
func (p Plan) Cycles() uint64 {
	var n uint64
	for _, c := range p {
		n += uint64(c)
	}
	return n
}

func (p Plan) Empty() bool { return p.Cycles() == 0 }
