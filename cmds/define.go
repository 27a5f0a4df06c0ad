package cmds

import "os"

var GlobalExecutor = NewExecutor()

// Define registers a command on the process-wide executor. Packages call
// this from init to contribute their own flags.
func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the process-wide executor, exiting the process
// on failure.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}
