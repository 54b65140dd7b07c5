package powerdown

import "sync/atomic"

// WakeFlag signals the transition from asleep to awake.
//
// Exactly one writer sets it (the watchdog interrupt, via Set) and exactly
// one context clears and reads it (the main line, via Clear and Awake). Each
// access is a single atomic operation, so no lock is needed between the two.
// The zero value is awake.
type WakeFlag struct {
	asleep atomic.Bool
}

// Set marks the CPU awake. Interrupt context only.
func (f *WakeFlag) Set() { f.asleep.Store(false) }

// Clear marks the CPU asleep. Main context only.
func (f *WakeFlag) Clear() { f.asleep.Store(true) }

func (f *WakeFlag) Awake() bool { return !f.asleep.Load() }

// wake is the process-wide flag; there is one watchdog per chip.
var wake WakeFlag

// HandleWake is the body of the watchdog interrupt handler.
func HandleWake() { wake.Set() }

// Awake reports whether no sleep request is in progress.
func Awake() bool { return wake.Awake() }
