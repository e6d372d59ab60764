package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/simonhull/lametag"
)

// Prints what the Xing/Info frame of each file says about the stream.
func main() {
	jsonOut := flag.Bool("json", false, "print one JSON object per file")
	verbose := flag.Bool("v", false, "log each parsing stage to stderr")
	strict := flag.Bool("strict", false, "treat warnings as errors")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lametag-dump [-json] [-v] [-strict] <file.mp3>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		info := lametag.GetVersionInfo()
		commit := info.GitCommit
		if info.Modified {
			commit += "-dirty"
		}
		fmt.Printf("lametag-dump %s (commit %s, built %s, %s)\n",
			info.Version, commit, info.BuildTime, info.GoVersion)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []lametag.Option{lametag.WithLogger(logger)}
	if *strict {
		opts = append(opts, lametag.WithStrictParsing())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files, err := lametag.OpenMany(ctx, flag.Args(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range files {
		if *jsonOut {
			err = writeJSON(os.Stdout, f)
		} else {
			err = writeText(os.Stdout, f)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
