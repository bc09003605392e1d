// types.go declares Literal, Index, Node and the sentinel errors
// returned while building or combining ZBDDs.
//
// Errors:
//
//	ErrUnknownLiteral - a literal outside the fixed variable order was requested.
//	ErrUnknownNode     - an Index addresses outside the arena.
package zbdd

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLiteral = errors.New("zbdd: unknown literal")
	ErrUnknownNode    = errors.New("zbdd: unknown node index")
)

// Literal is a signed reference to a basic event, the element type of
// a Product. Non-coherent trees need both polarities of the same
// event represented as distinct ZBDD variables.
type Literal struct {
	ID  string
	Neg bool
}

func (l Literal) String() string {
	if l.Neg {
		return fmt.Sprintf("!%s", l.ID)
	}
	return l.ID
}

// Index addresses a node in a Manager's arena. The two terminals are
// reserved at fixed indices: Empty (no products at all) at 0, Base
// (the family containing only the empty product) at 1.
type Index int32

const (
	EmptyIndex Index = 0
	BaseIndex  Index = 1
)

// Node is one interior node: Then is the sub-family of products that
// include this node's literal, Else the sub-family of products that
// don't.
type Node struct {
	Self   Index
	VarPos int
	Then   Index
	Else   Index
}
