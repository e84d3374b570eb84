// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalToPhysical(t *testing.T) {
	assert.Equal(t, Physical(800, 600), Logical(800, 600).ToPhysical(1))
	assert.Equal(t, Physical(1600, 1200), Logical(800, 600).ToPhysical(2))
	assert.Equal(t, Physical(1200, 900), Logical(800, 600).ToPhysical(1.5))

	// conversion rounds to nearest, not truncates
	assert.Equal(t, Physical(1000, 1000), Logical(666.67, 666.67).ToPhysical(1.5))
	assert.Equal(t, Physical(1, 1), Logical(0.5, 0.5).ToPhysical(1))
}

func TestRoundTrip(t *testing.T) {
	scales := []float32{1, 1.25, 1.5, 2, 2.5}
	for _, scale := range scales {
		for _, sz := range []PhysicalSize{{800, 600}, {1920, 1080}, {1, 1}, {0, 0}, {1366, 768}} {
			rt := sz.ToLogical(scale).ToPhysical(scale)
			assert.InDelta(t, sz.Width, rt.Width, 1, "scale %g size %v", scale, sz)
			assert.InDelta(t, sz.Height, rt.Height, 1, "scale %g size %v", scale, sz)
		}
	}
}

func TestPositionNegative(t *testing.T) {
	p := PhysicalPosition{X: -1920, Y: -32}
	lp := p.ToLogical(2)
	assert.Equal(t, LogicalPosition{X: -960, Y: -16}, lp)
	assert.Equal(t, p, lp.ToPhysical(2))
}

func TestInterfaces(t *testing.T) {
	// physical values pass through unchanged regardless of scale
	var sz Size = Physical(100, 50)
	assert.Equal(t, Physical(100, 50), sz.ToPhysical(2))
	var pos Position = PhysicalPosition{X: 10, Y: 20}
	assert.Equal(t, PhysicalPosition{X: 10, Y: 20}, pos.ToPhysical(3))

	sz = Logical(100, 50)
	assert.Equal(t, Physical(200, 100), sz.ToPhysical(2))
}

func TestPointInterop(t *testing.T) {
	assert.Equal(t, image.Pt(3, 4), Physical(3, 4).Point())
	assert.Equal(t, Physical(3, 4), PhysicalFromPoint(image.Pt(3, 4)))
	assert.Equal(t, image.Pt(-1, 2), PhysicalPosition{X: -1, Y: 2}.Point())
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Physical(30, 50), Physical(10, 20).Add(Physical(20, 30)))
	assert.Equal(t, Logical(30, 50), Logical(10, 20).Add(Logical(20, 30)))
	assert.Equal(t, Logical(20, 40), Logical(10, 20).MulScalar(2))
}
