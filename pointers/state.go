package pointers

// state enumerates the character machine's positions. The names appear in
// error messages, so they stay stable.
type state uint8

const (
	stateFindFirstLeft state = iota
	stateFindBeginOfNewNodeName
	stateFindEndOfNewNodeName
	stateFindSlash
	stateFindBeginOfConcept
	stateFindEndOfConcept
	stateFindRightOrBeginOfRelation
	stateFindEndOfRelation
	stateFindLeftOrBeginOfValue
	stateFindEndOfNonLiteralValue
	stateFindEndOfLiteralValue
	stateEnd
)

func (s state) String() string {
	switch s {
	case stateFindFirstLeft:
		return "find_first_left"
	case stateFindBeginOfNewNodeName:
		return "find_begin_of_new_node_name"
	case stateFindEndOfNewNodeName:
		return "find_end_of_new_node_name"
	case stateFindSlash:
		return "find_slash"
	case stateFindBeginOfConcept:
		return "find_begin_of_concept"
	case stateFindEndOfConcept:
		return "find_end_of_concept"
	case stateFindRightOrBeginOfRelation:
		return "find_right_or_begin_of_relation"
	case stateFindEndOfRelation:
		return "find_end_of_relation"
	case stateFindLeftOrBeginOfValue:
		return "find_left_or_begin_of_value"
	case stateFindEndOfNonLiteralValue:
		return "find_end_of_non_literal_value"
	case stateFindEndOfLiteralValue:
		return "find_end_of_literal_value"
	case stateEnd:
		return "end"
	}
	return "unknown"
}
