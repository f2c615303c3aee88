// Package batch computes the closest-pair distance of many named point sets
// held in a blobstore.BlobStore.
//
// Sets are loaded and solved concurrently, bounded by a resource.Controller.
// Each set is solved by its own sequential closestpair.Finder; a failing set
// never stops the others.
//
//	r := batch.NewRunner(store, batch.WithController(resource.NewController(resource.Config{MaxWorkers: 4})))
//	results, err := r.Run(ctx, []string{"a.cpts", "b.txt"})
package batch
