package powerdown

import (
	"sync/atomic"
	"time"

	"powersave-go/errcode"
	"powersave-go/x/timex"
)

// Powerdown serves sleep requests on one chip. Only one request may be in
// flight at a time.
type Powerdown struct {
	hw      Hardware
	profile Profile
	table   Table

	busy  atomic.Bool
	slept atomic.Uint64 // µs, sum of executed plans
}

// New binds hw to the timeout table of profile.
func New(hw Hardware, profile Profile) (*Powerdown, error) {
	if hw == nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "powerdown.New", "nil hardware")
	}
	t, err := TableFor(profile)
	if err != nil {
		return nil, errcode.Wrap(errcode.Of(err), "powerdown.New", profile.String())
	}
	return &Powerdown{hw: hw, profile: profile, table: t}, nil
}

func (p *Powerdown) Profile() Profile { return p.profile }
func (p *Powerdown) Table() Table     { return p.table }

// Plan returns the plan RequestSleep would execute for ms.
func (p *Powerdown) Plan(ms uint32) Plan { return p.table.Plan(ms) }

// RequestSleep sleeps for ms milliseconds rounded down to the timeout
// classes, and returns the executed plan. Requests shorter than the smallest
// class return at once with an empty plan. It returns errcode.Busy when
// another request is still running.
func (p *Powerdown) RequestSleep(ms uint32) (Plan, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return Plan{}, errcode.Busy
	}
	defer p.busy.Store(false)

	plan := p.table.Plan(ms)
	if plan.Empty() {
		return plan, nil
	}
	wake.Clear()
	Execute(p.hw, plan)
	p.slept.Add(plan.Total(p.table))
	return plan, nil
}

// Sleep is RequestSleep for a time.Duration, truncated to milliseconds.
func (p *Powerdown) Sleep(d time.Duration) (Plan, error) {
	return p.RequestSleep(timex.DurationToMs(d))
}

// Awake reports whether no sleep request is in progress.
func (p *Powerdown) Awake() bool { return wake.Awake() }

// Slept returns the total time spent in executed plans. Clocks that stop in
// power-down can be corrected by it.
func (p *Powerdown) Slept() time.Duration { return timex.UsToDuration(p.slept.Load()) }
