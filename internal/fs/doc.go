// Package fs provides the filesystem operations behind atomic blob writes,
// with a fault-injecting implementation for tests.
//
//   - [LocalFS]: Production implementation using the os package
//   - [FaultyFS]: Test utility that fails writes, syncs, closes or renames
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.CreateTemp(dir, ".tmp-*")
//
// Tests inject a [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//	store := blobstore.NewLocalStoreFS(dir, ffs)
//
// Operations take no context.Context; local syscalls cannot be interrupted.
package fs
