// Dump the headers of a PE file.
//
// Synopsis:
//
//	pehdr [--json] [--dirs] [--dump] FILE
//
// Description:
//
//	Prints the DOS header, the NT headers and the section table of a
//	Windows or EFI executable.
package main

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	pe "github.com/wanglei-coder/pehdr"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	filename string
	json     bool
	dirs     bool
	dump     bool
	logLevel string
}

func parseFlags(args []string) (*options, error) {
	var opts options
	app := kingpin.New("pehdr", "Dump the headers of a PE file.")
	app.Flag("json", "Print the summary as JSON.").BoolVar(&opts.json)
	app.Flag("dirs", "Also print the data directories.").BoolVar(&opts.dirs)
	app.Flag("dump", "Dump the raw header records.").BoolVar(&opts.dump)
	app.Flag("log-level", "Log level.").Default("warn").
		EnumVar(&opts.logLevel, "trace", "debug", "info", "warn", "error")
	app.Arg("file", "PE file to inspect.").Required().StringVar(&opts.filename)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

func run(opts *options, stdout io.Writer, logger hclog.Logger) error {
	f, err := pe.Open(opts.filename)
	if err != nil {
		return errors.Wrapf(err, "can not parse %s", opts.filename)
	}
	defer f.Close()

	logger.Debug("mapped file", "path", f.Name, "size", humanize.IBytes(uint64(f.Size())))
	logger.Debug("decoded headers",
		"e_lfanew", f.NtHeaderOffset,
		"class", f.Class(),
		"sections", len(f.Sections))

	info, err := newInfo(f.Image, opts.dirs)
	if err != nil {
		return err
	}
	if info.FileType == "Data" {
		logger.Warn("file type not recognised as an executable", "path", f.Name)
	}

	if opts.dump {
		spew.Fdump(stdout, f.DOSHeader, f.NtHeader, f.Sections)
	}

	if opts.json {
		return info.writeJSON(stdout)
	}
	return info.writeText(stdout)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "")

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pehdr",
		Level:  hclog.LevelFromString(opts.logLevel),
		Output: os.Stderr,
	})

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("inspection failed", "error", err)
		os.Exit(1)
	}
}
