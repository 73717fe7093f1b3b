//go:build unit

package task_test

import (
	"sync/atomic"
	"testing"
	"time"

	"auction-house/internal/pkg/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask(t *testing.T) {
	t.Run("fires exactly once after the delay", func(t *testing.T) {
		var fired atomic.Int32
		done := make(chan struct{})

		task.New(3, time.Millisecond, func() {
			fired.Add(1)
			close(done)
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("task never fired")
		}

		// Give a stray second fire a chance to show up.
		time.Sleep(10 * time.Millisecond)
		assert.Equal(t, int32(1), fired.Load())
	})

	t.Run("remaining counts down to zero", func(t *testing.T) {
		done := make(chan struct{})
		tk := task.New(5, time.Millisecond, func() { close(done) })

		require.LessOrEqual(t, tk.Remaining(), uint(5))

		<-done
		assert.Equal(t, uint(0), tk.Remaining())
	})

	t.Run("zero delay fires immediately", func(t *testing.T) {
		done := make(chan struct{})
		task.New(0, time.Hour, func() { close(done) })

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("zero-delay task never fired")
		}
	})
}
