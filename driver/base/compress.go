// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"github.com/asterwyx/winit/events"
)

// CompressEvents merges runs of consecutive non-unique events of the
// same type for the same window into a single event, so that a flood of
// mouse moves or preedit updates arriving between cycles is delivered
// as one event carrying the latest state. Unique events are never
// merged, and a run never extends across an event of a different type,
// window, or touch sequence.
func CompressEvents(evs []events.Event) []events.Event {
	if len(evs) < 2 {
		return evs
	}
	out := evs[:0]
	for _, e := range evs {
		if len(out) == 0 {
			out = append(out, e)
			continue
		}
		prev := out[len(out)-1]
		if e.IsUnique() || prev.IsUnique() ||
			e.Type() != prev.Type() || e.WindowID() != prev.WindowID() ||
			!sameFinger(prev, e) {
			out = append(out, e)
			continue
		}
		out[len(out)-1] = mergeEvents(prev, e)
	}
	return out
}

// sameFinger reports whether two touch events belong to the same
// in-progress touch. Moves from different fingers must not merge.
func sameFinger(a, b events.Event) bool {
	at, aok := a.(*events.Touch)
	bt, bok := b.(*events.Touch)
	if !aok || !bok {
		return true
	}
	return at.Sequence == bt.Sequence
}

// mergeEvents folds older into newer, which supersedes it. The newer
// event keeps its latest state; positional events keep the older
// event's Prev and Start so deltas span the whole merged run, and
// relative deltas accumulate.
func mergeEvents(older, newer events.Event) events.Event {
	nb := newer.AsBase()
	ob := older.AsBase()
	nb.Prev = ob.Prev
	nb.Start = ob.Start
	switch n := newer.(type) {
	case *events.MouseScroll:
		if o, ok := older.(*events.MouseScroll); ok && o.DeltaKind == n.DeltaKind {
			n.Delta = n.Delta.Add(o.Delta)
		}
	case *events.Device:
		if o, ok := older.(*events.Device); ok {
			n.DX += o.DX
			n.DY += o.DY
		}
	case *events.TouchMagnify:
		if o, ok := older.(*events.TouchMagnify); ok {
			n.ScaleFactor *= o.ScaleFactor
		}
	case *events.TouchRotate:
		if o, ok := older.(*events.TouchRotate); ok {
			n.Rotation += o.Rotation
		}
	}
	return newer
}
