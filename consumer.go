package consumable

// Consumer is anything that can hand out the records matching a pattern.
//
// Both SharedCollection and Collection.AsConsumer implement it.
type Consumer interface {
	Consume(pattern string) (*Collection, error)
}

var (
	_ Consumer = SharedCollection{}
	_ Consumer = collectionConsumer{}
)
