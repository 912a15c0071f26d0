package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownEcosystem is returned when a configured ecosystem name has no
	// registered strategy.
	ErrUnknownEcosystem = zerr.New("unknown ecosystem")

	// ErrNoEcosystems is returned when the configuration names no ecosystems
	// at all, leaving nothing to cache.
	ErrNoEcosystems = zerr.New("no ecosystems configured")
)
