package service

import (
	"errors"

	"github.com/okian/swatch/internal/adapters/repository"
)

// Sentinel error kinds returned by the service.
var (
	ErrNotStarted    = errors.New("service not started")
	ErrColorNotFound = errors.New("color not found")
	ErrBusy          = errors.New("analysis queue is full")
	ErrJobNotFound   = repository.ErrNotFound
)
