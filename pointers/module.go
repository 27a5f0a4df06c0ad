package pointers

import (
	"github.com/reusee/amr/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

func (Module) Decoder(
	logger logs.Logger,
) *Decoder {
	return &Decoder{
		Logger: logger,
	}
}
