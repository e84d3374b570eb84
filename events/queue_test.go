// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := &Queue{}
	q.Init()
	assert.Nil(t, q.NextEvent())

	for i := 0; i < 10; i++ {
		q.Send(NewCustom(i))
	}
	assert.Equal(t, uint64(10), q.Len())
	for i := 0; i < 10; i++ {
		ev := q.NextEvent()
		require.NotNil(t, ev)
		assert.Equal(t, i, ev.AsBase().Data)
	}
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueWake(t *testing.T) {
	q := &Queue{}
	q.Init()
	var wakes atomic.Int32
	q.Wake = func() { wakes.Add(1) }
	q.Send(NewCustom(nil))
	q.Send(NewCustom(nil))
	assert.Equal(t, int32(2), wakes.Load())
}

func TestQueueConcurrentSend(t *testing.T) {
	const senders = 8
	const per = 1000
	q := &Queue{}
	q.Init()

	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				q.Send(NewCustom([2]int{s, i}))
			}
		}(s)
	}

	// drain concurrently with the senders; per-sender order must hold
	got := 0
	last := [senders]int{}
	for i := range last {
		last[i] = -1
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for got < senders*per {
			ev := q.NextEvent()
			if ev == nil {
				continue
			}
			d := ev.AsBase().Data.([2]int)
			require.Greater(t, d[1], last[d[0]], "sender %d out of order", d[0])
			last[d[0]] = d[1]
			got++
		}
	}()
	wg.Wait()
	<-done
	assert.Equal(t, senders*per, got)
	assert.Equal(t, uint64(0), q.Len())
}
