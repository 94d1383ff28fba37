package picocad

import (
	"errors"
	"fmt"
)

// ErrEmptyScene is returned when the scene holds no mesh objects.
// An empty model file would not parse, so nothing is emitted.
var ErrEmptyScene = errors.New("picocad: scene has no mesh objects")

// MalformedGeometryError reports a face the output format cannot
// express. No document is produced when one is found.
type MalformedGeometryError struct {
	Object string
	Face   int
	Reason string
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("picocad: object %q face %d: %s", e.Object, e.Face, e.Reason)
}
