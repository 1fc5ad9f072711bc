package ir

import (
	"errors"
)

var (
	ErrReleased = errors.New("tree released")
	ErrRange    = errors.New("id out of range")
)
