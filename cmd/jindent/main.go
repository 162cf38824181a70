// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jindent re-indents JSON documents, preserving the order of object
// members and the exact decimal value of numbers.
//
// Usage:
//
//	jindent [flags] [file...]
//
// Each file operand (or standard input, if there are none or the operand is
// "-") must contain a single JSON document, which may be compressed with
// gzip, zstd or LZ4. Each document is written to standard output followed by
// a newline. A document that cannot be parsed is reported on standard error
// as "invalid JSON: <message>" and nothing is written for it.
//
// The exit status is 0 if every document was rendered, 1 if any document
// failed, and 2 for a usage or configuration error.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/creachadair/jindent"
	"github.com/creachadair/jindent/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// command holds the flags and I/O streams of a single invocation.
type command struct {
	float      *bool
	numbers    *string
	indent     *int
	maxDepth   *int
	laxCommas  *bool
	configPath *string
	logLevel   *string
	files      *[]string

	numbersSet, indentSet, maxDepthSet, laxSet, logLevelSet bool

	stdin          io.Reader
	stdout, stderr io.Writer
	logger         log.Logger
	printer        *jindent.Printer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("jindent", "Re-indent JSON documents, preserving member order and exact numbers.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')

	cmd := &command{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd.float = app.Flag("float", "Render numbers as 64-bit floating point (same as --numbers=float; conflicts with other --numbers values).").
		Short('f').Bool()
	cmd.numbers = app.Flag("numbers", "How to render numbers: exact, integer or float.").
		IsSetByUser(&cmd.numbersSet).Enum("exact", "integer", "float")
	cmd.indent = app.Flag("indent", "Spaces of indentation per nesting level.").
		Short('i').IsSetByUser(&cmd.indentSet).Int()
	cmd.maxDepth = app.Flag("max-depth", "Maximum nesting depth of arrays and objects.").
		IsSetByUser(&cmd.maxDepthSet).Int()
	cmd.laxCommas = app.Flag("lax-commas", "Ignore stray commas in objects.").
		IsSetByUser(&cmd.laxSet).Bool()
	cmd.configPath = app.Flag("config", "Path of a HuJSON configuration file.").
		Envar("JINDENT_CONFIG").String()
	cmd.logLevel = app.Flag("log.level", "Only log messages with the given severity or above.").
		IsSetByUser(&cmd.logLevelSet).Default("warn").Enum(config.LogLevels...)
	cmd.files = app.Arg("files", `Input files; "-" or none reads standard input.`).Strings()

	if _, err := app.Parse(args); err != nil {
		app.Errorf("%v", err)
		return 2
	}
	cfg, err := cmd.loadConfig()
	if err != nil {
		app.Errorf("%v", err)
		return 2
	}
	cmd.logger = newLogger(stderr, cfg.LogLevel)
	cmd.printer = jindent.NewPrinter(cfg.Options())

	files := *cmd.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	level.Info(cmd.logger).Log("msg", "starting", "inputs", len(files),
		"numbers", cfg.Numbers, "indent", cfg.Indent, "max_depth", cfg.MaxDepth)

	status := 0
	for _, name := range files {
		if err := cmd.process(name); err != nil {
			fmt.Fprintf(stderr, "invalid JSON: %v\n", err)
			level.Debug(cmd.logger).Log("msg", "document failed", "input", name, "err", err)
			status = 1
		}
	}
	return status
}

// loadConfig merges the defaults, the configuration file (if any), and the
// flags set on the command line, in that order of precedence.
func (c *command) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *c.configPath != "" {
		var err error
		cfg, err = config.Load(*c.configPath)
		if err != nil {
			return cfg, errors.Wrap(err, "loading config")
		}
	}
	if c.numbersSet {
		m, err := jindent.ParseNumberMode(*c.numbers)
		if err != nil {
			return cfg, err
		}
		cfg.Numbers = m
	}
	if *c.float {
		if c.numbersSet && *c.numbers != "float" {
			return cfg, errors.Errorf("--float conflicts with --numbers=%s", *c.numbers)
		}
		cfg.Numbers = jindent.Float
	}
	if c.indentSet {
		cfg.Indent = *c.indent
	}
	if c.maxDepthSet {
		cfg.MaxDepth = *c.maxDepth
	}
	if c.laxSet {
		cfg.LaxCommas = *c.laxCommas
	}
	if c.logLevelSet {
		cfg.LogLevel = *c.logLevel
	}
	return cfg, cfg.Validate()
}

// process renders the document named by name. The output is written only if
// the whole document was rendered successfully.
func (c *command) process(name string) error {
	var r io.Reader = c.stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	in, format, err := openInput(r)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	defer in.Close()
	if format != "" {
		level.Debug(c.logger).Log("msg", "decompressing input", "input", name, "format", format)
	}

	cr := &countingReader{r: in}
	var buf bytes.Buffer
	if err := c.printer.Render(&buf, cr); err != nil {
		return err
	}
	buf.WriteByte('\n')
	level.Debug(c.logger).Log("msg", "rendered document", "input", name,
		"read", humanize.Bytes(uint64(cr.n)), "wrote", humanize.Bytes(uint64(buf.Len())))

	_, err = buf.WriteTo(c.stdout)
	return err
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "error":
		return level.AllowError()
	}
	return level.AllowWarn()
}
