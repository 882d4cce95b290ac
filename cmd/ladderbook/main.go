// Command ladderbook is the batch/interactive driver for the matching
// core: it reads command lines from a file argument or stdin, dispatches
// each to the order book, and prints the resulting acknowledgement or
// trade-print lines to stdout. Everything outside of "read a line, parse
// it, dispatch it" is intentionally thin, matching the reference
// implementation's dev_main.cpp loop reimplemented in idiomatic Go.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"

	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	"github.com/quaystack/ladderbook/internal/usecase/dispatcher"
	"github.com/quaystack/ladderbook/internal/usecase/orderbook"
	"github.com/quaystack/ladderbook/internal/usecase/parser"
	"github.com/quaystack/ladderbook/pkg/logger"
)

func main() {
	dump := flag.Bool("dump", false, "print a diagnostic book dump after every processed line")
	flag.Parse()

	log, err := logger.NewLogger(logger.WithOutputPaths([]string{"stderr"}))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ladderbook: failed to init logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	in, closeIn, err := inputFrom(flag.Args())
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer closeIn()

	book := orderbook.New()
	disp := dispatcher.New(book, func() string { return ulid.Make().String() })

	run(in, os.Stdout, disp, book, *dump, log)
}

func inputFrom(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("ladderbook: cannot open %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}

func run(in io.Reader, out io.Writer, disp *dispatcher.Dispatcher, book *orderbook.Book, dump bool, log *logger.Logger) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return
		}

		cmd, err := parser.ParseLine(line)
		if err != nil {
			log.Warn("parse ignored", logger.NewField("line", line), logger.NewField("reason", err.Error()))
			continue
		}

		if m, ok := cmd.(requestv1.Match); ok {
			for _, tradeLine := range disp.DispatchMatch(m) {
				fmt.Fprintln(out, tradeLine)
			}
		} else {
			fmt.Fprintln(out, disp.Dispatch(cmd))
		}

		if dump {
			for _, sym := range book.Symbols() {
				book.Dump(sym, out) //nolint:errcheck
			}
		}
	}
}
