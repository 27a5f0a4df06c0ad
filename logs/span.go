package logs

// Span labels one unit of work; it travels in the context and is attached
// to every record logged under it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
