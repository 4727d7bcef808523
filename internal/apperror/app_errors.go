package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidBoard = errors.New("invalid board")

	ErrEmptyCorpus          = errors.New("corpus has no pages")
	ErrUnknownPage          = errors.New("page is not in corpus")
	ErrInvalidDampingFactor = errors.New("damping factor must be within [0, 1]")
	ErrInvalidSampleCount   = errors.New("sample count must be positive")
	ErrNotConverged         = errors.New("page rank did not converge")
)
