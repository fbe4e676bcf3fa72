package main

import (
	"fmt"
	"io"
	"os"

	"golox/internal"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/labstack/gommon/color"
	log "github.com/sirupsen/logrus"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: golox [-v] tokenize|parse|evaluate|run <filename>")
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)

	opts, optind, err := getopt.Getopts(os.Args, "v")
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err))
		usage()
		os.Exit(64)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			log.SetLevel(log.DebugLevel)
		}
	}

	args := os.Args[optind:]
	if len(args) != 2 {
		usage()
		os.Exit(64)
	}

	command, filename := args[0], args[1]

	b, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(fmt.Sprintf("Failed to read file %s", filename)))
		os.Exit(64)
	}
	source := string(b)

	var code int
	switch command {
	case "tokenize":
		code = internal.TokenizeSource(source, stdPrinter{})
	case "parse":
		code = internal.ParseSource(source, stdPrinter{})
	case "evaluate":
		code = internal.EvaluateSource(source, stdPrinter{})
	case "run":
		code = internal.RunSource(source, stdPrinter{})
	default:
		fmt.Fprintln(os.Stderr, color.Red(fmt.Sprintf("Unknown command: %s", command)))
		usage()
		os.Exit(64)
	}

	os.Exit(code)
}
