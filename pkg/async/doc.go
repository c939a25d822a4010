// Package async runs a function on its own goroutine and exposes its outcome
// as a future.
//
//	future := async.Exec(ctx, params, sender.SendEmail)
//
//	// Block:
//	err := future.Await()
//
//	// Or react without blocking the caller:
//	future.Then(func(err error) {
//		loop.Post(func() { handle(err) })
//	})
//
// # Errors
//
//   - ErrTimeout: AwaitWithTimeout exceeded its duration
//   - ErrPanic: the function panicked; the recovered value is in the message
//
// A context that is already cancelled when Exec is called short-circuits the
// function and the future completes with ctx.Err().
//
// All operations are safe for concurrent use.
package async
