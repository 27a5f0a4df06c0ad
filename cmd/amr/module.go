package main

import (
	"github.com/reusee/amr/amrconfigs"
	"github.com/reusee/amr/logs"
	"github.com/reusee/amr/pointers"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs  amrconfigs.Module
	Logs     logs.Module
	Pointers pointers.Module
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
