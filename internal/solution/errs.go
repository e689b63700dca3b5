package solution

import "errors"

var (
	ErrInvalid       = errors.New("solution invalid")
	ErrURLEmpty      = errors.New("URL cannot be empty")
	ErrTitleEmpty    = errors.New("title cannot be empty")
	ErrSolutionEmpty = errors.New("solution cannot be empty")
)
