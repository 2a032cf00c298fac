package a

import (
	"sync"
	"sync/atomic"
)

type Big struct{ buf [64]byte }

type Pair struct{ a, b int64 }

type Odd struct{ b [17]byte }

type Guarded struct {
	mu  sync.Mutex
	buf [64]byte
}

type Counter struct {
	n   atomic.Int64
	pad [32]byte
}

type Bytes [64]byte

type Box[T any] struct {
	v   T
	pad [32]byte
}

func takesBig(b Big) {} // want `this argument \(64 byte\) is passed by value, but would be more efficient if passed by ref \(limit: 16 byte\); consider passing by ref instead: \*Big`

func takesPtr(b *Big) {}

func takesPair(p Pair) {}

func takesOdd(o Odd) {} // want `\(17 byte\).*\*Odd`

func takesGuarded(g Guarded) {}

func takesCounter(c Counter) {}

func takesArray(b Bytes) {}

func takesAnon(s struct{ buf [64]byte }) {}

func takesTwo(x, y Big) {} // want `\(64 byte\)` `\(64 byte\)`

func takesBox[T any](b Box[T]) {}

func takesBoxInt(b Box[int]) {} // want `\(40 byte\).*\*Box\[int\]`

//export exported
func exported(b Big) {}

func (b Big) Len() int { return len(b.buf) } // want `\(64 byte\).*\*Big`

func (b *Big) Reset() { b.buf = [64]byte{} }

type Sink interface {
	Put(b Big) // want `\(64 byte\).*\*Big`
	Flush()
}

type store struct{}

var _ Sink = store{}

func (store) Put(b Big) {}

func (store) Flush() {}

func (store) Extra(b Big) {} // want `\(64 byte\).*\*Big`
