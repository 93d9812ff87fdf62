package main

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidGridArgs is returned when the positional grid size cannot be used.
var ErrInvalidGridArgs = errors.New("invalid grid size")

// parseGridArgs reads the optional [columns rows] arguments. With fewer than
// two arguments the configured grid is kept and both results are 0. Extra
// arguments are ignored.
func parseGridArgs(args []string) (columns, rows int, err error) {
	if len(args) < 2 {
		return 0, 0, nil
	}
	columns, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: columns %q is not an integer", ErrInvalidGridArgs, args[0])
	}
	rows, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q is not an integer", ErrInvalidGridArgs, args[1])
	}
	if columns <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d must be positive", ErrInvalidGridArgs, columns, rows)
	}
	return columns, rows, nil
}
