package cultivation

import "errors"

// ErrInvalidInput indicates a projection input that cannot produce a
// meaningful result (non-positive unit count, negative or inconsistent
// day offsets).
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidQuantity indicates a non-positive override quantity.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrJustificationRequired indicates an override deviating far enough from
// the computed forecast that a non-empty justification must accompany it.
var ErrJustificationRequired = errors.New("justification required")
