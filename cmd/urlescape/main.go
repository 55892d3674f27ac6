package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/anthonyraymond/urlescape/internal/config"
	"github.com/anthonyraymond/urlescape/internal/logs"
	"github.com/anthonyraymond/urlescape/pkg/urlescape"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
)

const (
	exitOk         = 0
	exitFailure    = 1
	exitUsageError = 2
)

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	_ = logs.GetLogger().Sync()
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var (
		configPath string
		mode       string
		decode     bool
		logLevel   string
	)

	flagSet := flag.NewFlagSet("urlescape", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "Path to a yaml config file")
	flagSet.StringVar(&mode, "mode", "", "Escape mode, 'strict' or 'likeUrlEncode'. Overrides the config file")
	flagSet.BoolVar(&decode, "decode", false, "Unescape the input instead of escaping it")
	flagSet.StringVar(&logLevel, "log.level", "", "Log level. Overrides the config file")

	if err := flagSet.Parse(args); err != nil {
		return exitUsageError
	}

	conf, err := config.Load(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}
	if logLevel != "" {
		conf.Log.Level = logLevel
	}
	if err := logs.ReplaceLogger(conf.Log); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}
	log := logs.GetLogger()

	flags := conf.Escape.Mode
	if mode != "" {
		if flags, err = urlescape.ParseFlags(mode); err != nil {
			_, _ = fmt.Fprintf(stderr, "invalid -mode flag: %v\n", err)
			return exitUsageError
		}
	}
	log.Debug("starting", zap.Stringer("mode", flags), zap.Bool("decode", decode), zap.Int("args", flagSet.NArg()))

	out := bufio.NewWriter(stdout)
	if flagSet.NArg() > 0 {
		err = processArgs(out, flagSet.Args(), flags, decode)
	} else {
		err = processStream(out, stdin, flags, decode)
	}
	if err == nil {
		err = errors.Wrap(out.Flush(), "failed to write output")
	}
	if err != nil {
		log.Debug("failed to process input", zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}
	return exitOk
}

func processArgs(w io.Writer, args []string, flags urlescape.Flags, decode bool) error {
	for i, arg := range args {
		var res string
		if decode {
			var err error
			if res, err = urlescape.Unescape(arg, flags); err != nil {
				return errors.Wrapf(err, "argument #%d", i+1)
			}
		} else {
			res = urlescape.Escape(arg, flags)
		}
		if _, err := fmt.Fprintln(w, res); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

func processStream(w io.Writer, r io.Reader, flags urlescape.Flags, decode bool) error {
	if !decode {
		_, err := io.Copy(w, transform.NewReader(r, urlescape.NewTransformer(flags)))
		return errors.Wrap(err, "failed to escape input")
	}

	// an escape may straddle a read boundary, decode the whole input at once
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	res, err := urlescape.Unescape(string(raw), flags)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, res)
	return errors.Wrap(err, "failed to write output")
}
