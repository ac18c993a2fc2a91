package findnew

import "errors"

var (
	// ErrUsage indicates missing or invalid command arguments.
	ErrUsage = errors.New("usage error")
	// ErrUnreadableDir indicates an image tree could not be listed.
	ErrUnreadableDir = errors.New("unreadable directory")
	// ErrDiffFailed indicates the comparison tool failed or printed no distance.
	ErrDiffFailed = errors.New("image diff failed")
	// ErrInvalidThreshold indicates a negative or NaN match threshold.
	ErrInvalidThreshold = errors.New("invalid threshold")
)
