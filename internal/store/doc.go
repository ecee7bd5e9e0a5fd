// Package store persists calculator state for sessions that outlive a single
// process, such as successive `calcpad press` invocations.
//
// StateFileStore serialises one domain.State as JSON under the configured
// home directory; writes go through a temp file and an atomic rename, and
// all methods are concurrency-safe via internal locking. MemoryStore keeps
// the state in process memory; it backs `calcpad mcp --ephemeral` and tests.
package store
