package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Println("commands:")
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		line := indent + name
		if command.Description != "" {
			line += "\n" + indent + "  " + command.Description
		}
		fmt.Println(line)
		if len(command.Subs) > 0 {
			printCommands(command.Subs, depth+1)
		}
	}
}
