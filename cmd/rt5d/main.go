// Command rt5d is the host-side programmer for the RT-5D / JJCC-888DMR
// handheld transceiver: it drives the twelve-step session over the
// programming cable and converts the radio's codeplug to and from a
// readable JSON document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/zardoz99/rt5d"
	"github.com/zardoz99/rt5d/internal/logx"
	"github.com/zardoz99/rt5d/internal/toolconfig"
	"github.com/zardoz99/rt5d/internal/transport"
	"github.com/zardoz99/rt5d/internal/wire"
)

const usage = `usage: rt5d <command> [args] [--debug]
  test                       run built-in self tests; exit 0 iff all pass
  ports                      list serial port names, sorted
  info   <port>              handshake + password + version read + end
  read   <port> [outfile]    default outfile "rt5d_config.json"
  write  <port> <infile> [--basic-info]
`

// Exit codes per the documented error-kind-to-exit-code mapping: usage/
// generic errors exit 1, protocol errors exit 2, transport errors exit 3.
const (
	exitOK        = 0
	exitUsage     = 1
	exitProtocol  = 2
	exitTransport = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// loadToolConfig loads the optional YAML tool config, falling back to
// defaults silently (a missing/unreadable config file never blocks a
// session; CLI flags and positional args always take precedence over
// whatever it supplies).
func loadToolConfig() *toolconfig.Config {
	cfg, err := toolconfig.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: ignoring tool config: %v\n", err)
		return toolconfig.Defaults()
	}
	return cfg
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	cmd := args[0]
	rest := flagsFirst(args[1:])

	switch cmd {
	case "-h", "--help", "help":
		fmt.Print(usage)
		return exitOK
	case "test":
		return runTest(rest)
	case "ports":
		return runPorts(rest)
	case "info":
		return runInfo(rest)
	case "read":
		return runRead(rest)
	case "write":
		return runWrite(rest)
	default:
		fmt.Fprintf(os.Stderr, "rt5d: unknown command %q\n\n%s", cmd, usage)
		return exitUsage
	}
}

// flagsFirst moves flag arguments ahead of positional ones, so flags may
// follow the positional arguments as the usage text shows. Every
// subcommand flag is boolean, so no flag consumes the argument after it.
func flagsFirst(args []string) []string {
	var flags, positional []string
	for _, a := range args {
		if len(a) > 1 && a[0] == '-' {
			flags = append(flags, a)
		} else {
			positional = append(positional, a)
		}
	}
	return append(flags, positional...)
}

// newLogger builds the ambient logger for a subcommand. baseLevel comes
// from the optional tool config; --debug always overrides it to DebugLevel.
func newLogger(debug bool, baseLevel string) *logx.Logger {
	level := baseLevel
	if debug {
		level = "debug"
	}
	return logx.New(logx.Config{Level: level})
}

// classifyErr maps an error returned by the rt5d/wire/transport layers to
// the documented exit code for its error kind.
func classifyErr(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, transport.ErrTransport), errors.Is(err, transport.ErrTimeout):
		return exitTransport
	case errors.Is(err, wire.ErrCrcMismatch),
		errors.Is(err, wire.ErrMalformedLength),
		errors.Is(err, rt5d.ErrRetryExhausted),
		errors.Is(err, rt5d.ErrWrongSize),
		errors.Is(err, rt5d.ErrVerifyFailed):
		return exitProtocol
	default:
		// Flag-parsing errors, codeplug.ErrUsage (malformed JSON document)
		// and codeplug.ErrCodec (out-of-range slot, malformed hex/digit
		// string, unrecoverable enum) all share exit code 1.
		return exitUsage
	}
}

// newFlagSet builds a FlagSet for subcommand name with the shared --debug
// flag already registered.
func newFlagSet(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	debug := fs.Bool("debug", false, "raise logging to debug and trace every send_receive attempt")
	return fs, debug
}
