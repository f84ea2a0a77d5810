// Command frash prints the fractal hash of its arguments, or of stdin when
// no argument is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/subosito/gotenv"

	"github.com/forestrie/go-frash/fingerprint"
	"github.com/forestrie/go-frash/frash"
	"github.com/forestrie/go-frash/render"
)

var version = "dev"

const (
	formatHex  = "hex"
	formatCBOR = "cbor"
)

var errUsage = errors.New("invalid arguments")

// config holds the CLI configuration parsed from the environment, flags and
// positional arguments.
type config struct {
	length      int
	maxLength   int
	fractal     bool
	one         string
	zero        string
	color       bool
	format      string
	logLevel    string
	showVersion bool
	args        []string
}

func main() {
	// A missing .env is not an error.
	_ = gotenv.Load()

	cfg, err := parseFlags(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "frash: %v\n", err)
		os.Exit(2)
	}
	if cfg.showVersion {
		fmt.Printf("frash %s\n", version)
		os.Exit(0)
	}

	logger.New(cfg.logLevel)
	code := run(cfg, os.Stdin, os.Stdout, os.Stderr, logger.Sugar.WithServiceName("frash"))
	logger.OnExit()
	os.Exit(code)
}

// parseFlags parses args on top of the defaults taken from getenv.
func parseFlags(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	env, err := envDefaults(getenv)
	if err != nil {
		return config{}, err
	}

	cfg := config{}
	fs := flag.NewFlagSet("frash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.length, "length", env.length, "Number of hex digits in the digest")
	fs.IntVar(&cfg.maxLength, "max-length", env.maxLength, "Largest accepted -length")
	fs.BoolVar(&cfg.fractal, "fractal", false, "Print the automaton grid before the digest")
	fs.StringVar(&cfg.one, "one", "#", "Glyph for set cells in the grid")
	fs.StringVar(&cfg.zero, "zero", " ", "Glyph for clear cells in the grid")
	fs.BoolVar(&cfg.color, "color", false, "Colour set cells in the grid")
	fs.StringVar(&cfg.format, "format", formatHex, "Output format: hex or cbor")
	fs.StringVar(&cfg.logLevel, "log-level", env.logLevel, "Log level (NOOP, DEBUG, INFO, ...)")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: frash [flags] [input ...]\n\n")
		fmt.Fprintf(stderr, "Hashes the space separated arguments, or stdin when there are none.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.args = fs.Args()

	if cfg.length <= 0 {
		return config{}, fmt.Errorf("%w: -length must be positive, got %d", errUsage, cfg.length)
	}
	if utf8.RuneCountInString(cfg.one) != 1 {
		return config{}, fmt.Errorf("%w: -one must be a single character", errUsage)
	}
	if utf8.RuneCountInString(cfg.zero) != 1 {
		return config{}, fmt.Errorf("%w: -zero must be a single character", errUsage)
	}
	switch cfg.format {
	case formatHex, formatCBOR:
	default:
		return config{}, fmt.Errorf("%w: unknown -format %q", errUsage, cfg.format)
	}
	return cfg, nil
}

// run hashes the configured input and writes the result to stdout.
// Returns an exit code: 0 for success, 1 for a rejected input, 2 for an
// unusable length.
func run(cfg config, stdin io.Reader, stdout, stderr io.Writer, log logger.Logger) int {
	input, err := readInput(cfg.args, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "frash: reading input: %v\n", err)
		return 1
	}
	log.Debugf("hashing %d bytes: length=%d maxLength=%d", len(input), cfg.length, cfg.maxLength)

	res, err := frash.Compute(input, frash.WithLength(cfg.length), frash.WithMaxLength(cfg.maxLength))
	if err != nil {
		log.Infof("hash failed: %v", err)
		fmt.Fprintf(stderr, "frash: %v\n", err)
		if errors.Is(err, frash.ErrBadLength) ||
			errors.Is(err, frash.ErrLengthTooLarge) ||
			errors.Is(err, frash.ErrBadMaxLength) {
			return 2
		}
		return 1
	}
	log.Debugf("digest %s: shift=%d rows=%v", res.Digest, res.Shift, res.Rows)

	if cfg.fractal {
		if err := writeFractal(stdout, cfg, res.Grid); err != nil {
			fmt.Fprintf(stderr, "frash: %v\n", err)
			return 1
		}
	}

	if err := writeDigest(stdout, cfg.format, res); err != nil {
		fmt.Fprintf(stderr, "frash: %v\n", err)
		return 1
	}
	return 0
}

// readInput joins args with single spaces. With no args it reads stdin,
// dropping one trailing line ending.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	return []byte(s), nil
}

func writeFractal(w io.Writer, cfg config, g frash.Grid) error {
	one, _ := utf8.DecodeRuneInString(cfg.one)
	zero, _ := utf8.DecodeRuneInString(cfg.zero)
	glyphs := render.Glyphs{One: one, Zero: zero}
	if cfg.color {
		return render.Styled(w, g, glyphs, render.OneStyle)
	}
	return render.Grid(w, g, glyphs)
}

func writeDigest(w io.Writer, format string, res frash.Result) error {
	if format == formatCBOR {
		codec, err := fingerprint.NewCodec()
		if err != nil {
			return err
		}
		data, err := codec.Encode(fingerprint.FromResult(res))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	_, err := fmt.Fprintln(w, res.Digest)
	return err
}
