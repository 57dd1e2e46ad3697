package scaffold

import "fmt"

// TargetNotFoundError is returned when the target directory does not exist
// or is not a directory. Nothing is written when it occurs.
type TargetNotFoundError struct {
	Path   string
	NotDir bool
}

func (e *TargetNotFoundError) Error() string {
	if e.NotDir {
		return fmt.Sprintf("target is not a directory: %s", e.Path)
	}
	return fmt.Sprintf("target directory does not exist: %s", e.Path)
}

// TemplateMissingError reports a bundled template asset that could not be
// found. It only affects the template it names.
type TemplateMissingError struct {
	Path string
}

func (e *TemplateMissingError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Path)
}
