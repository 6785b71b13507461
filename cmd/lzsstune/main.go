// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command lzsstune measures the LZSS codec on a corpus and compares it with
// other compression formats.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/sim31/lzss"
	"github.com/sim31/lzss/internal/tuning"
	"github.com/ulikunitz/zdata"
)

const usageStr = `Usage: lzsstune [OPTION]... [DIR]
Compress all files of DIR, by default the Silesia corpus, with the LZSS codec
and the reference codecs and print size, ratio and speed for each codec.

  -s, --history-bits N  LZSS history bits; default 12
  -c, --match-bits N    LZSS match length bits; default 4
  -d, --search-depth N  LZSS search depth; default 0
  -m, --max-size N      use only the first N bytes of each file; default
                        1048576, 0 for the complete files
  -C, --codecs LIST     comma-separated list of codecs; default all
  -v, --verbose         print the complete results
  -h, --help            give this help
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// config holds the flag values.
type config struct {
	params  lzss.Parameters
	maxSize int
	codecs  []string
	verbose bool
	dir     string
}

func parseFlags(cmdName string, args []string) (cfg config, err error) {
	flags := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var (
		historyBits = flags.IntP("history-bits", "s",
			lzss.DefaultHistoryBits, "")
		matchBits = flags.IntP("match-bits", "c",
			lzss.DefaultMatchLenBits, "")
		depth = flags.IntP("search-depth", "d",
			lzss.DefaultSearchDepth, "")
		maxSize = flags.IntP("max-size", "m", 1<<20, "")
		codecs  = flags.StringP("codecs", "C",
			strings.Join(tuning.CodecNames(), ","), "")
		verbose = flags.BoolP("verbose", "v", false, "")
		help    = flags.BoolP("help", "h", false, "")
	)
	if err = flags.Parse(args); err != nil {
		return cfg, err
	}
	if *help {
		return cfg, pflag.ErrHelp
	}
	if flags.NArg() > 1 {
		return cfg, errors.New("too many arguments")
	}
	cfg = config{
		params: lzss.Parameters{
			HistoryBits:  *historyBits,
			MatchLenBits: *matchBits,
			SearchDepth:  *depth,
		},
		maxSize: *maxSize,
		codecs:  strings.Split(*codecs, ","),
		verbose: *verbose,
		dir:     flags.Arg(0),
	}
	if err = cfg.params.Verify(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// printResults writes a table of the results.
func printResults(w io.Writer, results []tuning.Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "codec\tfiles\tuncompressed\tcompressed\tratio\t"+
		"compress MB/s\tdecompress MB/s\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.3f\t%.2f\t%.2f\t\n",
			r.Codec, r.Files, r.Uncompressed, r.Compressed,
			r.Ratio(), r.CompressSpeed(), r.DecompressSpeed())
	}
	return tw.Flush()
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	cfg, err := parseFlags(cmdName, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(os.Stdout)
			os.Exit(0)
		}
		log.Printf("%s; for help, type %s -h", err, cmdName)
		os.Exit(2)
	}

	codecs, err := tuning.LookupCodecs(cfg.codecs, cfg.params)
	if err != nil {
		log.Fatal(err)
	}
	var corpus fs.FS = zdata.Silesia
	if cfg.dir != "" {
		corpus = os.DirFS(cfg.dir)
	}
	files, err := tuning.Files(corpus)
	if err != nil {
		log.Fatalf("loading corpus: %s", err)
	}
	files = tuning.Limit(files, cfg.maxSize)
	fmt.Printf("%d files, %d bytes, %s\n", len(files), tuning.Size(files),
		cfg.params)

	results := make([]tuning.Result, 0, len(codecs))
	for _, c := range codecs {
		r, err := tuning.Measure(files, c)
		if err != nil {
			log.Fatal(err)
		}
		if r.Skipped > 0 {
			log.Printf("%s: skipped %d files", r.Codec, r.Skipped)
		}
		results = append(results, r)
	}
	if err = printResults(os.Stdout, results); err != nil {
		log.Fatal(err)
	}
	if cfg.verbose {
		pretty.Println(results)
	}
}
