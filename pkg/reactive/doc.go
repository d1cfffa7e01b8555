// Package reactive provides the push-pull signal graph at the heart of
// Filament.
//
// Dependencies are tracked automatically at runtime: reading a signal while
// a memo computes or an effect runs subscribes that subscriber to the
// signal's changes. Writes push dirty marks through the graph; lazy nodes
// (memos) pull fresh values only when read.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	count := NewSignal(0)
//	value := count.Get()  // Read (subscribes current listener)
//	count.Set(5)          // Write (notifies subscribers)
//	count.Update(func(n int) int { return n + 1 })
//
// Memo[T] is a cached derived computation:
//
//	doubled := NewMemo(func() int { return count.Get() * 2 })
//	value := doubled.Get()  // Recomputes only if dependencies changed
//
// NewEffect runs side effects when dependencies change:
//
//	NewEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { /* cleanup */ }
//	})
//
// # Batching
//
// Multiple signal updates can be batched to trigger a single flush:
//
//	Batch(func() {
//	    a.Set(1)
//	    b.Set(2)
//	    c.Set(3)
//	})  // Dependent effects run once after all updates
//
// Outside a batch, each write flushes pending effects synchronously before
// it returns.
//
// # Ownership
//
// Subscribers belong to the Owner active when they were created. Disposing
// an owner tears down every effect, memo, and nested scope it owns and runs
// registered cleanups:
//
//	result := CreateScope(func(dispose func()) string {
//	    NewEffect(func() Cleanup { ... })
//	    OnCleanup(func() { ... })
//	    return "ready"
//	})
//
// # Execution Model
//
// Execution is single-threaded and cooperative. Graph propagation, effect
// flushes, and disposal all run to completion synchronously within the call
// that triggered them. The tracking context is per-goroutine; sharing one
// graph across goroutines is not supported.
package reactive
