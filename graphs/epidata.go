package graphs

// Marker is a layout directive attached to a triple, recording how the
// bracketed text nested at that position.
type Marker interface {
	isMarker()
}

// Push records that the text descended into Variable right after the
// triple it is attached to.
type Push struct {
	Variable string
}

// Pop records a closing parenthesis after the triple it is attached to.
type Pop struct{}

func (Push) isMarker() {}
func (Pop) isMarker()  {}
