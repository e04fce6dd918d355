package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/zardoz99/rt5d"
	"github.com/zardoz99/rt5d/codeplug"
	"github.com/zardoz99/rt5d/internal/transport"
)

// totalWriteSteps mirrors totalReadSteps for the write-then-verify-read
// sequence: handshake/password/version, then the eight write steps (dtmf,
// keys, 80 contacts, 4 rx-groups, 64 channels, vfo, options, optional
// basic-info), end, the restart wait, the verify phase marker, and a full
// verify read.
const totalWriteSteps = 3 + 1 + 1 + 80 + 4 + 64 + 1 + 1 + 1 + 1 + 1 + 1 + totalReadSteps

func runWrite(args []string) int {
	fs, debug := newFlagSet("write")
	includeBasicInfo := fs.Bool("basic-info", false, "also write the basic-info block (step 11)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}
	port := fs.Arg(0)
	infile := fs.Arg(1)

	data, err := os.ReadFile(infile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: reading %s: %v\n", infile, err)
		return exitUsage
	}

	cp, err := codeplug.Unmarshal(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return exitUsage
	}

	payloads, err := codeplug.ToPayloads(cp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return exitUsage
	}

	cfg := loadToolConfig()

	tr, err := transport.Open(port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return classifyErr(err)
	}
	defer tr.Close()

	log := newLogger(*debug, cfg.LogLevel)
	bar := progressbar.NewOptions(totalWriteSteps,
		progressbar.OptionSetDescription("writing"),
		progressbar.OptionSetWidth(40),
	)
	sess := rt5d.NewSession(tr, rt5d.WithLogger(log), rt5d.WithProgress(progressBarObserver(bar)))

	deadline := sessionDeadline
	if cfg.SessionDeadline > 0 {
		deadline = cfg.SessionDeadline
	}
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	if err := sess.WriteSession(ctx, payloads, rt5d.WriteOptions{IncludeBasicInfo: *includeBasicInfo}); err != nil {
		fmt.Fprintf(os.Stderr, "\nrt5d: %v\n", err)
		return classifyErr(err)
	}
	bar.Finish()

	fmt.Println("\nwrite verified")
	return exitOK
}
