package stats

import "golang.org/x/exp/constraints"

// Number is any element type a series may hold.
type Number interface {
	constraints.Integer | constraints.Float
}
