package treefill

import (
	"errors"
	"fmt"

	"github.com/collidersim/treefill/pkg/treefill/event"
)

// Sentinel errors for writer construction.
var (
	// ErrNoBranches indicates NewWriter was called with no branch specs.
	ErrNoBranches = errors.New("no branch specs")

	// ErrUnknownClass indicates a branch spec named a class outside the
	// known schema set. Configuration parsing reports it; during writer
	// construction the spec is diagnosed and dropped instead.
	ErrUnknownClass = errors.New("unknown output class")

	// ErrBadBranchList indicates a configured branch list that is neither a
	// flat repeated triple list nor a list of {input, name, class} entries.
	ErrBadBranchList = errors.New("malformed branch list")
)

// Sentinel errors for conversion.
var (
	// ErrDepthExceeded indicates a constituent chain deeper than the three
	// shapes the flattener supports, violating the upstream depth contract.
	ErrDepthExceeded = errors.New("constituent chain exceeds supported depth")
)

// BranchError wraps an error with the branch it occurred on.
type BranchError struct {
	// Branch is the output branch name.
	Branch string
	// Class is the branch's schema class.
	Class Class
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BranchError) Error() string {
	return fmt.Sprintf("branch %s (%s): %v", e.Branch, e.Class, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BranchError) Unwrap() error {
	return e.Err
}

// FlattenError reports a constituent chain the flattener cannot resolve.
type FlattenError struct {
	// Ref is the sub-candidate where resolution failed.
	Ref event.Ref
}

// Error implements the error interface.
func (e *FlattenError) Error() string {
	return fmt.Sprintf("candidate %d: %v", e.Ref, ErrDepthExceeded)
}

// Unwrap returns ErrDepthExceeded for errors.Is support.
func (e *FlattenError) Unwrap() error {
	return ErrDepthExceeded
}

// ConsistencyError reports a track record whose impact parameters disagree
// with its fitted track-parameter vector. It signals a logic error in the
// upstream producer or in the field mapping, not a recoverable data
// condition.
type ConsistencyError struct {
	// Index is the candidate's position in the input collection.
	Index int
	// Report lists the disagreeing fields.
	Report []Discrepancy
}

// Error implements the error interface.
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("track %d: impact parameters disagree with track vector: %v", e.Index, e.Report)
}
