package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/reusee/amr/cmds"
	"github.com/reusee/amr/configs"
	"github.com/reusee/amr/graphs"
	"github.com/reusee/amr/logs"
	"github.com/reusee/amr/modes"
	"github.com/reusee/amr/penmans"
	"github.com/reusee/amr/pointers"
	"github.com/reusee/amr/vars"
	"github.com/reusee/dscope"
)

var (
	inputPath  = cmds.Var[string]("-input")
	outputPath = cmds.Var[string]("-output")
	fieldName  = cmds.Var[string]("-field")
	toPointer  = cmds.Switch("-to-pointer")
	strictFlag = cmds.Switch("-strict")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		decoder *pointers.Decoder,
		loader configs.Loader,
		newSpan logs.NewSpan,
	) {
		ctx, _ := newSpan(ctx, "")

		field := vars.FirstNonZero(
			*fieldName,
			configs.First[string](loader, "field"),
			"amr",
		)
		strict := *strictFlag || configs.First[bool](loader, "strict")

		input := io.Reader(os.Stdin)
		if *inputPath != "" {
			f, err := os.Open(*inputPath)
			ce(err)
			defer f.Close()
			input = f
		}
		output := io.Writer(os.Stdout)
		if *outputPath != "" {
			f, err := os.Create(*outputPath)
			ce(err)
			defer f.Close()
			output = f
		}

		logger.InfoContext(ctx, "convert",
			"field", field,
			"to-pointer", *toPointer,
		)

		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 1<<20), 1<<24)
		writer := bufio.NewWriter(output)
		defer writer.Flush()

		var lines, backoffs int
		for scanner.Scan() {
			lines++

			var record map[string]any
			if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
				ce(logs.WrapSpan(ctx, fmt.Errorf("line %d: %w", lines, err)))
			}

			raw, ok := record[field].(string)
			if ok {
				if *toPointer {
					converted, err := pointers.Pointerize(raw)
					if err != nil {
						ce(logs.WrapSpan(ctx, fmt.Errorf("line %d: %w", lines, err)))
					}
					record[field] = converted
					logger.DebugContext(ctx, "converted",
						"line", lines,
						"tokens", pointers.TokenCount(converted),
					)

				} else {
					g, status, _ := decoder.Decode(raw)
					if status == pointers.StatusBackoff {
						backoffs++
						if strict {
							ce(logs.WrapSpan(ctx, fmt.Errorf("line %d: conversion backed off", lines)))
						}
					}
					converted, err := penmans.Encode(g)
					if err != nil {
						ce(logs.WrapSpan(ctx, fmt.Errorf("line %d: %w", lines, err)))
					}
					record[field] = converted
					logger.DebugContext(ctx, "converted",
						"line", lines,
						"nodes", graphs.NodeCount(g),
					)
				}
			}

			out, err := json.Marshal(record)
			ce(err)
			_, err = writer.Write(out)
			ce(err)
			ce(writer.WriteByte('\n'))
		}
		ce(scanner.Err())

		logger.InfoContext(ctx, "done",
			"lines", lines,
			"backoffs", backoffs,
		)
	})
}
