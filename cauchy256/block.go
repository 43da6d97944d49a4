package cauchy256

// Block is a single data or recovery block. Rows [0, k) identify data
// blocks; rows [k, k+m) identify recovery blocks. Presence is modeled
// as an explicit predicate over Payload rather than a nullable pointer:
// a Block with a nil or empty Payload is absent.
type Block struct {
	Row     int
	Payload []byte
}

// Present reports whether this Block carries a payload.
func (b Block) Present() bool { return len(b.Payload) != 0 }
