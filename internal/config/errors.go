package config

import "errors"

var (
	ErrMissingProviderToken = errors.New("provider token is required")
	ErrMissingProviderType  = errors.New("provider type is required")
	ErrInvalidProviderType  = errors.New("invalid provider type")
	ErrMissingRepoPath      = errors.New("repository path is required")
)
