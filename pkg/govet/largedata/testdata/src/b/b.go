package b

type Big struct{ buf [64]byte }

type Huge struct{ buf [65]byte }

func takesBig(b Big) {}

func takesHuge(h Huge) {} // want `\(65 byte\).*\(limit: 64 byte\).*\*Huge`
