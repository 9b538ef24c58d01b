// Package effect holds the timer-free state machines behind the portfolio's
// animations: the falling-glyph background, the terminal typist and the
// recommendation carousel.
//
// Nothing in this package schedules work. Callers own the timers: they ask a
// machine how long to wait, wait on their own event loop, then call the
// matching transition. Randomness comes in through Source so tests can
// script every roll.
package effect
