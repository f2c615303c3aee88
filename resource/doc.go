// Package resource bounds the memory, concurrency and read throughput used
// when many point sets are solved at once.
package resource
