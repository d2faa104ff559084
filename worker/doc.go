// Package worker runs a function over a stream of inputs on a fixed number of
// goroutines and hands the outputs back in input order.
//
//	pool := worker.NewPool(func(ctx context.Context, raw []byte) *Outcome {
//		return check(ctx, raw)
//	}, 4)
//	for out := range pool.Run(ctx, inputs) {
//		// out arrives in the order inputs were sent
//	}
package worker
