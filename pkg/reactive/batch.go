package reactive

// Batch groups multiple signal writes into a single flush.
// Writes inside the batch mark and enqueue as usual, but pending effects
// only run when the outermost batch completes, so an effect depending on
// several written signals runs once, not once per write.
//
// Batches can be nested; only the outermost exit flushes.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	    age.Set(30)
//	})
//	// Dependent effects have run exactly once by now
func Batch(fn func()) {
	ctx := getTrackingContext()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			flush(ctx)
		}
	}()

	fn()
}

// Untracked runs a function with dependency tracking suspended.
// Signal reads inside fn don't register edges for the current subscriber.
//
// Note: for a single signal read, signal.Peek() is clearer.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// UntrackedValue runs fn with tracking suspended and returns its result.
func UntrackedValue[T any](fn func() T) T {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	return fn()
}
