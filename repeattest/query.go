package repeattest

import (
	"fmt"

	"github.com/skybrian/repeat-test-go/gen"
	"github.com/skybrian/repeat-test-go/pickfunc"
)

// DefaultTakeAllLimit bounds TakeAll's result when no Limit is given.
const DefaultTakeAllLimit = 1000

// DefaultFindLimit bounds how many values Find examines before giving
// up.
const DefaultFindLimit = 1000

// Take returns the first n values script's ordered enumeration
// produces. It errors if fewer than n are reachable.
func Take[T any](script pickfunc.Script[T], n int) ([]T, error) {
	cursor := GenerateAll(script)
	out := make([]T, 0, n)
	for len(out) < n {
		g, ok := cursor.Next()
		if !ok {
			if err := cursor.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("repeattest: %s: only %d of %d requested values are reachable", script.Name(), len(out), n)
		}
		out = append(out, g.Val())
	}
	return out, nil
}

// TakeAllOptions configures TakeAll.
type TakeAllOptions struct {
	// Limit caps how many values may be collected before TakeAll gives
	// up and errors, on the assumption the enumeration is unexpectedly
	// unbounded. Zero means DefaultTakeAllLimit.
	Limit int
}

// TakeAll returns every value script's ordered enumeration produces,
// erroring if the count would exceed opts.Limit.
func TakeAll[T any](script pickfunc.Script[T], opts TakeAllOptions) ([]T, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultTakeAllLimit
	}
	cursor := GenerateAll(script)
	var out []T
	for {
		g, ok := cursor.Next()
		if !ok {
			if err := cursor.Err(); err != nil {
				return nil, err
			}
			return out, nil
		}
		if len(out) >= limit {
			return nil, fmt.Errorf("repeattest: %s: enumeration exceeds limit %d", script.Name(), limit)
		}
		out = append(out, g.Val())
	}
}

// FindOptions configures Find.
type FindOptions struct {
	// Limit caps how many values are examined before giving up. Zero
	// means DefaultFindLimit.
	Limit int
}

// Find returns the first generated value satisfying predicate, erroring
// if none of the first opts.Limit values examined do.
func Find[T any](script pickfunc.Script[T], predicate func(T) bool, opts FindOptions) (*gen.Gen[T], error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultFindLimit
	}
	cursor := GenerateAll(script)
	for i := 0; i < limit; i++ {
		g, ok := cursor.Next()
		if !ok {
			if err := cursor.Err(); err != nil {
				return nil, err
			}
			break
		}
		if predicate(g.Val()) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("repeattest: %s: no match in the first %d values examined", script.Name(), limit)
}
