package forwarder

import (
	"context"
	"io"
	"os"

	"vaelstrom-url-handler/cmdline"
	"vaelstrom-url-handler/config"
	"vaelstrom-url-handler/logging"
)

// Entry identifies how the OS launched the handler.
type Entry int

const (
	// Console processes have stderr for diagnostics.
	Console Entry = iota
	// Windowed processes have no console; diagnostics go to the log file only.
	Windowed
)

// Main runs one handler invocation and returns the process exit status.
// Both bootstrap shims call it.
func Main(entry Entry) int {
	cfg, cfgErr := config.Load()

	var console io.Writer
	if entry == Console {
		console = os.Stderr
	}
	logger, closeLog, logErr := logging.New(cfg, console)
	defer closeLog()

	if cfgErr != nil {
		logger.Printf("%v", cfgErr)
	}
	if logErr != nil {
		logger.Printf("%v", logErr)
	}

	args, err := cmdline.Args()
	if err != nil {
		logger.Printf("read command line: %v", err)
		return ExitCode(wrapError(CodeMissingArgument, "read command line", err))
	}

	err = New(WithLogger(logger)).Run(context.Background(), args)
	if err != nil {
		logger.Printf("exit: %s", CodeOf(err))
	}
	return ExitCode(err)
}
