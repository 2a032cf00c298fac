package c

type Empty struct{}

type One struct{ b byte }

func takesEmpty(e Empty) {}

func takesOne(o One) {} // want `\(1 byte\).*\(limit: 0 byte\).*\*One`
