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

const defaultReadOutfile = "rt5d_config.json"

// totalReadSteps matches the step count a read session reports progress
// over: handshake, password, version, dtmf, keys, 80 contacts packets,
// 4 rx-groups packets, 64 channel packets, vfo, options, basic-info, end.
const totalReadSteps = 3 + 1 + 1 + 80 + 4 + 64 + 1 + 1 + 1 + 1

func runRead(args []string) int {
	fs, debug := newFlagSet("read")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}
	cfg := loadToolConfig()

	port := fs.Arg(0)
	outfile := cfg.OutputPath
	if outfile == "" {
		outfile = defaultReadOutfile
	}
	if fs.NArg() == 2 {
		outfile = fs.Arg(1)
	}

	tr, err := transport.Open(port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return classifyErr(err)
	}
	defer tr.Close()

	log := newLogger(*debug, cfg.LogLevel)
	bar := progressbar.NewOptions(totalReadSteps,
		progressbar.OptionSetDescription("reading"),
		progressbar.OptionSetWidth(40),
	)
	sess := rt5d.NewSession(tr, rt5d.WithLogger(log), rt5d.WithProgress(progressBarObserver(bar)))

	deadline := sessionDeadline
	if cfg.SessionDeadline > 0 {
		deadline = cfg.SessionDeadline
	}
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	payloads, err := sess.ReadSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nrt5d: %v\n", err)
		return classifyErr(err)
	}
	bar.Finish()

	cp, err := codeplug.FromPayloads(payloads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return exitUsage
	}

	data, err := codeplug.Marshal(cp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return exitUsage
	}

	if err := os.WriteFile(outfile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: writing %s: %v\n", outfile, err)
		return exitUsage
	}

	fmt.Printf("\nwrote %s\n", outfile)
	return exitOK
}

// progressBarObserver adapts rt5d.Progress updates to bar.Set, advancing
// the bar one unit per update, counted across all phases of the session.
func progressBarObserver(bar *progressbar.ProgressBar) rt5d.ProgressFunc {
	seen := 0
	return func(rt5d.Progress) {
		seen++
		bar.Set(seen)
	}
}
