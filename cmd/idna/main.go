package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/idna"
	"github.com/wippyai/idna/punycode"
)

func main() {
	var (
		toUnicode   = flag.Bool("u", false, "Convert to Unicode (default: to ASCII)")
		raw         = flag.Bool("raw", false, "Raw Punycode label codec, no xn-- prefix or label splitting")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		punycode.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Usage: idna [-u] [-raw] <name>...")
			fmt.Fprintln(os.Stderr, "       idna [-u] [-raw] < names.txt")
			fmt.Fprintln(os.Stderr, "       idna -i  (interactive mode)")
			os.Exit(1)
		}
		if err := runBatch(os.Stdin, *toUnicode, *raw); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, in := range inputs {
		out, err := convert(in, *toUnicode, *raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}

func convert(in string, toUnicode, raw bool) (string, error) {
	switch {
	case raw && toUnicode:
		return punycode.Decode(in)
	case raw:
		return punycode.Encode(in)
	case toUnicode:
		return idna.ToUnicode(in)
	default:
		return idna.ToASCII(in)
	}
}

// runBatch converts piped input one line at a time. A failing line reports
// its error but does not stop the stream; the exit status reflects whether
// any line failed.
func runBatch(f *os.File, toUnicode, raw bool) error {
	scanner := bufio.NewScanner(f)
	failed := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Println()
			continue
		}
		out, err := convert(line, toUnicode, raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
			failed++
			continue
		}
		fmt.Println(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d line(s) failed", failed)
	}
	return nil
}
