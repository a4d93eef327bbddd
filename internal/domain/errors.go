package domain

import "errors"

// ErrSoundNotFound is returned by stores when a sound id is unknown.
var ErrSoundNotFound = errors.New("sound not found")
