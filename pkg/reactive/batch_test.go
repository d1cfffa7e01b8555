package reactive

import "testing"

func TestBatchCoalescesWrites(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)
	runs := 0
	var lastSum int

	e := NewEffect(func() Cleanup {
		lastSum = a.Get() + b.Get()
		runs++
		return nil
	})
	defer e.Dispose()

	Batch(func() {
		a.Set(10)
		b.Set(20)
	})

	if runs != 2 {
		t.Errorf("effect ran %d times, want 2 (once initial, once for the batch)", runs)
	}
	if lastSum != 30 {
		t.Errorf("effect saw sum %d, want 30", lastSum)
	}
}

func TestBatchReadsSeeNewValues(t *testing.T) {
	s := NewSignal(1)

	Batch(func() {
		s.Set(5)
		// Writes apply immediately; only effect flushing is deferred.
		if got := s.Get(); got != 5 {
			t.Errorf("Get inside batch = %d, want 5", got)
		}
	})
}

func TestBatchNesting(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	e := NewEffect(func() Cleanup {
		s.Get()
		runs++
		return nil
	})
	defer e.Dispose()

	Batch(func() {
		s.Set(1)
		Batch(func() {
			s.Set(2)
		})
		// Inner batch exit must not flush: depth is still positive.
		if runs != 1 {
			t.Errorf("effect ran %d times inside outer batch, want 1", runs)
		}
		s.Set(3)
	})

	if runs != 2 {
		t.Errorf("effect ran %d times, want 2", runs)
	}
}

func TestBatchEmptyIsHarmless(t *testing.T) {
	Batch(func() {})
}

func TestBatchMemoReadInsideSeesConsistentValue(t *testing.T) {
	a := NewSignal(1)
	m := NewMemo(func() int { return a.Get() * 2 })
	m.Get()

	Batch(func() {
		a.Set(5)
		// Pull inside the batch: the memo recomputes on demand.
		if got := m.Get(); got != 10 {
			t.Errorf("memo inside batch = %d, want 10", got)
		}
	})
}

func TestBatchFlushesOnPanic(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	e := NewEffect(func() Cleanup {
		s.Get()
		runs++
		return nil
	})
	defer e.Dispose()

	func() {
		defer func() { recover() }()
		Batch(func() {
			s.Set(1)
			panic("boom")
		})
	}()

	// The deferred batch exit still flushes what was enqueued.
	if runs != 2 {
		t.Errorf("effect ran %d times after panicking batch, want 2", runs)
	}
}
