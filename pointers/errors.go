package pointers

import "errors"

// Sentinel errors of the strict character machine, one per rule it can
// break. Returned wrapped with the offending character or token and the
// machine state; match with errors.Is.
var (
	ErrUnexpectedBeginOfNodeName = errors.New("unexpected begin of node name")
	ErrUnexpectedCharOfNodeName  = errors.New("unexpected char of node name")
	ErrUnexpectedNodeName        = errors.New("unexpected node name")
	ErrDuplicateNodeName         = errors.New("duplicate node name")
	ErrExpectingSlash            = errors.New("expecting slash")
	ErrUnexpectedBeginOfConcept  = errors.New("unexpected begin of concept")
	ErrUnexpectedCharOfConcept   = errors.New("unexpected char of concept")
	ErrExpectingRightOrRelation  = errors.New("expecting right parenthesis or begin of relation")
	ErrUnexpectedCharOfRelation  = errors.New("unexpected char of relation")
	ErrExpectingValue            = errors.New("expecting left parenthesis or begin of value")
	ErrUnexpectedCharOfValue     = errors.New("unexpected char of node name or constant")
	ErrExpectingEnd              = errors.New("expecting end")
	ErrUnexpectedEndStatus       = errors.New("unexpected end status")
	ErrUnresolvedNodeNames       = errors.New("unresolved node names")
)
