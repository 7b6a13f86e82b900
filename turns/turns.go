// Package turns provides the discrete time unit of a game and a dense
// turn-indexed series type.
package turns

import "fmt"

// Turn is the number of a game turn. Games start at turn 1.
type Turn int

func (t Turn) String() string { return fmt.Sprintf("Turn %d", int(t)) }
