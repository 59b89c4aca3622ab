package tui

import "github.com/Veraticus/wastewise/internal/model"

// classifiedMsg carries the outcome of a session classification.
type classifiedMsg struct {
	result *model.ClassificationResult
	err    error
}

// listedMsg carries the outcome of a marketplace listing.
type listedMsg struct {
	listing *model.Listing
	err     error
}

// sampleLoadedMsg carries a sample read from disk.
type sampleLoadedMsg struct {
	err  error
	name string
}
