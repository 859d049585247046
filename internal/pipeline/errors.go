package pipeline

import "errors"

var (
	// ErrUpstream wraps failures of the media fetcher, transcriber or
	// recipe extractor.
	ErrUpstream = errors.New("upstream failure")

	// ErrParse means the recipe extractor answered with something other
	// than a JSON object.
	ErrParse = errors.New("invalid extractor response")
)
