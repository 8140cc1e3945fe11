// Package consumable provides a producer/consumer hand-off buffer of string records.
//
// Producers append records to a SharedCollection from any number of goroutines. Consumers
// periodically take out, in one atomic step, every record whose trimmed form starts with a
// pattern, and receive ownership of exactly that subset as a new Collection. Records that do
// not match stay untouched. Consume never blocks waiting for data; a Poller wraps the polling
// loop for callers that want to wait.
package consumable
