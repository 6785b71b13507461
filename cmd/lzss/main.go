// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command lzss compresses and decompresses files with the LZSS codec.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/ogier/pflag"
	"github.com/sim31/lzss"
)

const usageStr = `Usage: lzss encode [OPTION]... FILE ARCHIVE_PATH
  or:  lzss decode [OPTION]... ARCHIVE FILE_PATH
Compress FILE into ARCHIVE_PATH or decompress ARCHIVE into FILE_PATH.

Encode options:
  -s, --history-bits N  width of the history position field (3-31); default 12
  -c, --match-bits N    width of the match length field (2-15); default 4
  -d, --search-depth N  number of matches compared; 0 finds the longest
                        match; default 0

Common options:
  -o, --overwrite       overwrite an existing target file
  -v, --verbose         print every record to standard error
  -p, --progress        show a progress bar
  -h, --help            give this help
`

// Exit codes of the command.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// newLogger creates the logger for diagnostics. The prefix is colored if w is
// a terminal.
func newLogger(w io.Writer, cmdName string) *log.Logger {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return log.New(w, c.Sprint(cmdName+": "), 0)
}

// parseFlags parses the arguments of the command. The encode command
// supports the parameter flags.
func parseFlags(cmd string, args []string) (opts *options, files []string, err error) {
	opts = new(options)
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)
	var (
		historyBits, matchBits, depth *int
	)
	if cmd == "encode" {
		historyBits = fs.IntP("history-bits", "s",
			lzss.DefaultHistoryBits, "")
		matchBits = fs.IntP("match-bits", "c",
			lzss.DefaultMatchLenBits, "")
		depth = fs.IntP("search-depth", "d", lzss.DefaultSearchDepth, "")
	}
	fs.BoolVarP(&opts.overwrite, "overwrite", "o", false, "")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	fs.BoolVarP(&opts.progress, "progress", "p", false, "")
	help := fs.BoolP("help", "h", false, "")
	if err = fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if *help {
		return nil, nil, pflag.ErrHelp
	}
	if fs.NArg() != 2 {
		return nil, nil, fmt.Errorf("%s requires two file arguments",
			cmd)
	}
	if cmd == "encode" {
		opts.params = lzss.Parameters{
			HistoryBits:  *historyBits,
			MatchLenBits: *matchBits,
			SearchDepth:  *depth,
		}
	}
	return opts, fs.Args(), nil
}

// run executes the command and returns the exit code.
func run(cmdName string, args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, cmdName)
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	cmd := args[0]
	var newCodec func(opts *options) (codecFunc, error)
	switch cmd {
	case "encode":
		newCodec = encoder
	case "decode":
		newCodec = decoder
	case "-h", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		logger.Printf("unknown command %q; for help, type %s -h",
			cmd, cmdName)
		return exitUsage
	}

	opts, files, err := parseFlags(cmd, args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(stdout)
			return exitOK
		}
		logger.Printf("%s; for help, type %s -h", err, cmdName)
		return exitUsage
	}
	fn, err := newCodec(opts)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	if opts.verbose {
		lzss.SetDebugOutput(stderr)
		defer lzss.SetDebugOutput(nil)
	}

	stats, err := processFile(files[0], files[1], opts, stderr, fn)
	if err != nil {
		logger.Print(err)
		return exitError
	}
	fmt.Fprintf(stdout, "%s -> %s: %d -> %d bytes, ratio %.3f,"+
		" %d literals, %d references\n",
		files[0], files[1], sizeIn(cmd, stats), sizeOut(cmd, stats),
		stats.Ratio(), stats.Literals, stats.References)
	return exitOK
}

// sizeIn returns the number of bytes read by the command.
func sizeIn(cmd string, s lzss.Stats) int64 {
	if cmd == "decode" {
		return s.Compressed
	}
	return s.Uncompressed
}

// sizeOut returns the number of bytes written by the command.
func sizeOut(cmd string, s lzss.Stats) int64 {
	if cmd == "decode" {
		return s.Uncompressed
	}
	return s.Compressed
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	os.Exit(run(cmdName, os.Args[1:], os.Stdout, os.Stderr))
}
