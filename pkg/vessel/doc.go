// Package vessel procedurally constructs a simplified reactor containment
// building as a single solid, using an abstract geometry kernel for
// primitive construction and boolean operations.
package vessel
