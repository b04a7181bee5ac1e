package machine

// Input is an element of the recognizer alphabet Σ∪{ε}. The zero value is the
// empty symbol, which is distinct from ε.
type Input struct {
	sym string
	eps bool
}

// NewInput returns an input carrying the symbol sym.
func NewInput(sym string) Input {
	return Input{sym: sym}
}

// Epsilon returns the ε input.
func Epsilon() Input {
	return Input{eps: true}
}

// Word splits s into one single-character input per byte. Recognizers built
// from regular expressions consume their subject text this way.
func Word(s string) []Input {
	ins := make([]Input, len(s))
	for i := 0; i < len(s); i++ {
		ins[i] = NewInput(s[i : i+1])
	}
	return ins
}

func (i Input) IsEpsilon() bool {
	return i.eps
}

func (i Input) Symbol() string {
	return i.sym
}

func (i Input) String() string {
	if i.eps {
		return "ε"
	}
	return i.sym
}
