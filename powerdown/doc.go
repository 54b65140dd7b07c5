// Package powerdown puts a microcontroller to sleep for an arbitrary number
// of milliseconds using a watchdog timer that only offers eight fixed
// timeout classes.
//
// A request is decomposed greedily into repeat counts per class, longest
// class first:
//
//	plan := table.Plan(5000) // 5 V: 2x2.1s, 1x520ms, 1x260ms, 1x16.3ms
//	powerdown.Execute(hw, plan)
//
// Any remainder shorter than the smallest class is dropped, so a sleep never
// overshoots the request. Requests below the smallest class do not sleep.
//
// The CPU wakes through the watchdog interrupt, whose handler must call
// HandleWake. The wake flag it sets is the only state shared between the
// interrupt and the main context.
package powerdown
