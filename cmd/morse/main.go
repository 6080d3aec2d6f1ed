// morse - dot/dash transcoder CLI
//
// Usage:
//
//	morse [flags] encode   Read plaintext from stdin, print code
//	morse [flags] decode   Read code from stdin, print plaintext
//	morse -i               Interactive mode
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/morse/codec"
	"github.com/wippyai/morse/config"
	"github.com/wippyai/morse/errors"
	"github.com/wippyai/morse/transcoder"
)

type mode string

const (
	modeEncode mode = "encode"
	modeDecode mode = "decode"
)

type options struct {
	configFile  string
	strategy    string
	strict      bool
	verbose     bool
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "Path to HCL config file")
	flag.StringVar(&opts.strategy, "strategy", "", "Decode strategy (map, tree, offset)")
	flag.BoolVar(&opts.strict, "strict", false, "Reject unencodable characters instead of dropping them")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging to stderr")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	flag.Usage = usage
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := resolveConfig(opts, set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	tr, err := newTranscoder(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal on stdin")
			os.Exit(1)
		}
		if err := runInteractive(tr, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	m, err := parseMode(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	if err := run(tr, m, cfg.Strict, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `morse - dot/dash transcoder

Usage:
  morse [flags] encode   Read plaintext from stdin, print code
  morse [flags] decode   Read code from stdin, print plaintext
  morse -i               Interactive mode

Flags:
`)
	flag.PrintDefaults()
}

func parseMode(arg string) (mode, error) {
	switch m := mode(strings.ToLower(arg)); m {
	case modeEncode, modeDecode:
		return m, nil
	}
	return "", errors.InvalidInput(errors.PhaseInput, fmt.Sprintf("unknown command %q", arg))
}

// resolveConfig loads the config file, if any, and applies explicitly set flags on top.
func resolveConfig(opts options, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if set["strategy"] {
		s, err := codec.ParseStrategy(opts.strategy)
		if err != nil {
			return nil, err
		}
		cfg.Strategy = s
	}
	if set["strict"] {
		cfg.Strict = opts.strict
	}
	if opts.verbose {
		cfg.LogLevel = zap.DebugLevel
	}
	return cfg, nil
}

// newLogger returns a development logger on stderr filtered at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return l, nil
}

func newTranscoder(cfg *config.Config, log *zap.Logger) (*transcoder.Transcoder, error) {
	dec, err := codec.NewDecoder(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	log.Debug("transcoder ready",
		zap.String("strategy", cfg.Strategy.String()),
		zap.Bool("strict", cfg.Strict))
	return transcoder.New(transcoder.WithDecoder(dec), transcoder.WithLogger(log)), nil
}

// run reads the whole of in, transcodes it and writes the result and a newline to out.
func run(tr *transcoder.Transcoder, m mode, strict bool, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(errors.PhaseInput, errors.KindInvalidInput, err, "read stdin")
	}

	result, err := transcode(tr, m, strict, string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", m, err)
	}

	if _, err := fmt.Fprintln(out, result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func transcode(tr *transcoder.Transcoder, m mode, strict bool, text string) (string, error) {
	switch {
	case m == modeDecode:
		return tr.DecodeMessage(text)
	case strict:
		return tr.EncodeStrict(text)
	default:
		return tr.EncodeMessage(text)
	}
}
