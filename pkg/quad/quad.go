package quad

import (
	"fmt"
	"github.com/wttech/maxfour/pkg/common/intsx"
)

// Names of the values in the order they are read.
var Names = []string{"a", "b", "c", "d"}

// Quad holds the four values of a single program run
type Quad struct {
	A int32 `yaml:"a" json:"a"`
	B int32 `yaml:"b" json:"b"`
	C int32 `yaml:"c" json:"c"`
	D int32 `yaml:"d" json:"d"`
}

func New(a, b, c, d int32) Quad {
	return Quad{A: a, B: b, C: c, D: d}
}

func (q Quad) Max() int32 {
	return intsx.MaxOfFour(q.A, q.B, q.C, q.D)
}

// MarshalText yields the maximum, the only thing printed in text format
func (q Quad) MarshalText() string {
	return fmt.Sprintf("%d", q.Max())
}

func (q Quad) MarshalTable() [][]any {
	return [][]any{
		{Names[0], q.A},
		{Names[1], q.B},
		{Names[2], q.C},
		{Names[3], q.D},
		{"max", q.Max()},
	}
}

func (q Quad) String() string {
	return fmt.Sprintf("a=%d b=%d c=%d d=%d", q.A, q.B, q.C, q.D)
}
