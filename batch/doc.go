// Package batch evaluates a differentiable function at many points
// concurrently.
//
// 🚀 What is it for?
//
//	Dual arithmetic is single-threaded and its derivative shapes are
//	immutable, so independent evaluation points can run in parallel as
//	long as each worker seeds its own inputs. An Evaluator does exactly
//	that with a bounded errgroup and returns results in input order.
//
// ✨ Key features:
//   - Evaluate: value and dense gradient per point
//   - Check: ad.CheckGradient per point
//   - per-point failures (arity, panic, non-finite) never stop the batch
//   - context cancellation aborts outstanding points
//   - zap logging through WithLogger, prometheus counters per point
//
// ⚙️ Usage:
//
//	f := func(x []ad.Dual) ad.Dual { return ad.Mul(x[0], ad.Sin(x[1])) }
//	ev, _ := batch.New(f, 2, batch.WithWorkers(8))
//	res, err := ev.Evaluate(ctx, [][]float64{{1, 0}, {2, 1}})
package batch
