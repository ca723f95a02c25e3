// Package ensemble draws many independent randomized copies of one network,
// in parallel, for null-model statistics.
//
//	rep, err := ensemble.Run(ctx, g, ensemble.Params{
//		Mode: ensemble.ModeRandomize, Samples: 100, Seed: 1, Rounds: 10, Limit: 15,
//	}, ensemble.WithWorkers(8))
//
// Results do not depend on the worker count: sample k always uses seed
// Seed+k on a fresh clone of the input.
package ensemble
