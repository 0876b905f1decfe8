package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a caller supplies a coordinate outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidLevelData is returned when level matrices or the starting position are malformed.
	ErrInvalidLevelData = errors.New("invalid level data")
)

// BoundsError reports the offending coordinate and the board it was checked against.
type BoundsError struct {
	Coord Coord
	Dims  Dims
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s outside %dx%d board: %v", e.Coord, e.Dims.W, e.Dims.H, ErrOutOfBounds)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Level data error codes.
const (
	CodeEmpty          = "EMPTY_MATRIX"
	CodeNonRectangular = "NON_RECTANGULAR"
	CodeShapeMismatch  = "SHAPE_MISMATCH"
	CodeBadTile        = "BAD_TILE"
	CodeBadObstacle    = "BAD_OBSTACLE"
	CodeBadStart       = "BAD_START"
)

// LevelError contains details about a level that failed to load.
type LevelError struct {
	Code    string
	Message string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *LevelError) Unwrap() error {
	return ErrInvalidLevelData
}

func levelErrorf(code, format string, args ...any) error {
	return &LevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}
