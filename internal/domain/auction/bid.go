package auction

import "container/heap"

// Bid is an offer on a running auction: owner email plus value. Ordered by
// value only.
type Bid struct {
	owner string
	value int64
}

func NewBid(owner string, value int64) Bid {
	return Bid{owner: owner, value: value}
}

func (b Bid) Owner() string { return b.owner }
func (b Bid) Value() int64  { return b.value }

// bidHeap is a max-heap of bids; the winning bid stays at the root.
type bidHeap []Bid

func (h bidHeap) Len() int           { return len(h) }
func (h bidHeap) Less(i, j int) bool { return h[i].value > h[j].value }
func (h bidHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *bidHeap) Push(x any)        { *h = append(*h, x.(Bid)) }
func (h *bidHeap) Pop() any {
	old := *h
	n := len(old)
	b := old[n-1]
	*h = old[:n-1]
	return b
}

// Pool is the ordered bid pool of one auction. Not safe for concurrent use;
// the auction house serializes access under its auction lock.
type Pool struct {
	bids bidHeap
}

func NewPool(first Bid) *Pool {
	p := &Pool{bids: bidHeap{first}}
	heap.Init(&p.bids)
	return p
}

// Highest returns the current winning bid without removing it.
func (p *Pool) Highest() Bid {
	return p.bids[0]
}

// Offer accepts the bid only if it is strictly greater than the current
// highest; ties lose, so the first high bidder keeps the lead.
func (p *Pool) Offer(b Bid) bool {
	if b.value <= p.Highest().value {
		return false
	}
	heap.Push(&p.bids, b)
	return true
}

func (p *Pool) Len() int {
	return p.bids.Len()
}
