// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package canvas

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameScheduler_Coalesces(t *testing.T) {
	s := NewFrameScheduler()

	assert.False(t, s.Take())

	s.Request()
	s.Request()
	s.Request()
	assert.True(t, s.Pending())
	assert.True(t, s.Take())
	assert.False(t, s.Take())
	assert.Equal(t, uint64(1), s.Frames())
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler()

	s.Request()
	s.Cancel()

	assert.False(t, s.Pending())
	assert.False(t, s.Take())
	assert.Equal(t, uint64(0), s.Frames())
}

func TestFrameScheduler_ConcurrentRequests(t *testing.T) {
	s := NewFrameScheduler()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Request()
		}()
	}
	wg.Wait()

	assert.True(t, s.Take())
	assert.False(t, s.Take())
}

func TestTransform(t *testing.T) {
	tr := Transform{X: 10, Y: -5, Scale: 1.5}

	assert.Equal(t, "translate(10px, -5px) scale(1.5)", tr.String())
	assert.Equal(t, Point{X: 25, Y: 10}, tr.Apply(Point{X: 10, Y: 10}))
}
