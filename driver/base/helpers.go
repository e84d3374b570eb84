// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the data and logic common to all driver
// implementations: the generic app and window bases and the Looper,
// the dispatch-cycle state machine every backend runs.
package base

import "time"

// FuncRun is a function to call on the dispatch thread and a channel to
// signal on when it has finished running.
type FuncRun struct {
	F    func()
	Done chan struct{}
}

// Waiter is the native idle primitive of a backend: how the dispatch
// loop blocks between cycles. Desktop backends map it onto the
// platform's message-pump wait; the offscreen backend uses channels.
// Wake is the only method safe to call from other goroutines.
type Waiter interface {

	// Wait blocks until Wake is called or native events arrive.
	Wait()

	// WaitTimeout blocks like Wait, but for at most d.
	WaitTimeout(d time.Duration)

	// Poll processes any pending native events without blocking and
	// clears a pending wake.
	Poll()

	// Wake wakes a concurrent Wait or WaitTimeout, or makes the next
	// one return immediately. Safe to call from any goroutine.
	Wake()
}

// ChanWaiter is the channel-based [Waiter] used by backends without a
// native wait primitive of their own.
type ChanWaiter struct {
	wake chan struct{}
}

// NewChanWaiter returns a new initialized ChanWaiter.
func NewChanWaiter() *ChanWaiter {
	return &ChanWaiter{wake: make(chan struct{}, 1)}
}

func (c *ChanWaiter) Wait() {
	<-c.wake
}

func (c *ChanWaiter) WaitTimeout(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-c.wake:
	case <-t.C:
	}
}

func (c *ChanWaiter) Poll() {
	select {
	case <-c.wake:
	default:
	}
}

func (c *ChanWaiter) Wake() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}
