/* Copyright 2025 Airavoto Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package clock abstracts the system time so that time-sensitive logic
// can be exercised deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock tells the current time. Production code uses the real clock and
// tests substitute a mock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

// New returns a clock backed by the system time.
func New() Clock {
	return &systemClock{}
}

// Mock is a clock whose current time is set manually.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock returns a mock clock initialized to a fixed point in time.
func NewMock() *Mock {
	return &Mock{
		now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local),
	}
}

// Now returns the mock's current time.
func (c *Mock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// SetNow sets the mock's current time.
func (c *Mock) SetNow(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the mock's current time forward by d.
func (c *Mock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
