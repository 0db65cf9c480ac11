// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInterval(t *testing.T) {
	assert.Equal(t, Interval{-1, 1}, NewInterval(-1, 1))
	assert.Equal(t, Interval{3, 3}, NewInterval(3, 3))
	assert.PanicsWithValue(t, "region: invalid interval range [2, 1)", func() {
		NewInterval(2, 1)
	})
	assert.PanicsWithValue(t, "region: invalid interval range [-Inf, +Inf)", func() {
		NewInterval(math.Inf(-1), math.Inf(1))
	})
	assert.PanicsWithValue(t, "region: invalid interval range [0, +Inf)", func() {
		NewInterval(0, math.Inf(1))
	})
}

func TestInterval(t *testing.T) {
	i := Interval{-2, 2}

	t.Run("Width", func(t *testing.T) {
		assert.Equal(t, 4.0, i.Width())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "[-2,2)", i.String())
	})

	t.Run("Contains", func(t *testing.T) {
		assert.True(t, i.Contains(-2))
		assert.True(t, i.Contains(0))
		assert.True(t, i.Contains(1.999))
		assert.False(t, i.Contains(2))
		assert.False(t, i.Contains(-2.001))
		assert.False(t, i.Contains(math.NaN()))
	})

	t.Run("Split", func(t *testing.T) {
		assert.Equal(t, []Interval{{-2, 0}, {0, 2}}, i.Split())
	})

	t.Run("SplitExtreme", func(t *testing.T) {
		wide := NewInterval(-math.MaxFloat64, math.MaxFloat64)
		assert.Equal(t, []Interval{{-math.MaxFloat64, 0}, {0, math.MaxFloat64}}, wide.Split())

		high := NewInterval(math.MaxFloat64/2, math.MaxFloat64)
		halves := high.Split()
		assert.False(t, math.IsInf(halves[0].Max, 0))
		assert.True(t, halves[0].Contains(math.MaxFloat64/2))
		assert.True(t, halves[1].Contains(math.Nextafter(math.MaxFloat64, 0)))
	})

	t.Run("Overlaps", func(t *testing.T) {
		testCases := []struct {
			name     string
			o        Interval
			expected bool
		}{
			{"Same", Interval{-2, 2}, true},
			{"Inside", Interval{-1, 1}, true},
			{"Left", Interval{-3, -1}, true},
			{"Right", Interval{1, 3}, true},
			{"TouchLeft", Interval{-3, -2}, false},
			{"TouchRight", Interval{2, 3}, false},
			{"Empty", Interval{0, 0}, false},
			{"EmptyAtMin", Interval{-2, -2}, false},
			{"EmptyOutside", Interval{5, 5}, false},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.Equal(t, testCase.expected, i.Overlaps(testCase.o))
				assert.Equal(t, testCase.expected, testCase.o.Overlaps(i))
			})
		}
	})
}
