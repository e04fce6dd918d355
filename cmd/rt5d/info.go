package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zardoz99/rt5d"
	"github.com/zardoz99/rt5d/internal/transport"
)

// sessionDeadline bounds a whole radio session, per the concurrency model's
// 120s ceiling.
const sessionDeadline = 120 * time.Second

// versionFirmwareLen is how many leading bytes of the 128-byte version
// block are a printable firmware identifier string; the rest is shown as a
// hex dump except for the one documented hardware revision byte.
const versionFirmwareLen = 16

func runInfo(args []string) int {
	fs, debug := newFlagSet("info")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}
	port := fs.Arg(0)
	cfg := loadToolConfig()

	tr, err := transport.Open(port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return classifyErr(err)
	}
	defer tr.Close()

	log := newLogger(*debug, cfg.LogLevel)
	sess := rt5d.NewSession(tr, rt5d.WithLogger(log))

	deadline := sessionDeadline
	if cfg.SessionDeadline > 0 {
		deadline = cfg.SessionDeadline
	}
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	version, err := sess.Info(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return classifyErr(err)
	}

	printVersionBlock(version)
	return exitOK
}

func printVersionBlock(b []byte) {
	firmware := strings.TrimRight(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return -1
		}
		return r
	}, string(b[:versionFirmwareLen])), "\x00")

	fmt.Printf("firmware:          %q\n", firmware)
	if len(b) > versionFirmwareLen {
		fmt.Printf("hardware revision: %d\n", b[versionFirmwareLen])
	}

	fmt.Println("raw version block:")
	rest := b[versionFirmwareLen+1:]
	for off := 0; off < len(rest); off += 16 {
		end := off + 16
		if end > len(rest) {
			end = len(rest)
		}
		fmt.Printf("  %04x  % x\n", off+versionFirmwareLen+1, rest[off:end])
	}
}
