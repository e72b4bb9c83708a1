package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/csnappy"
	"github.com/wippyai/csnappy/buffer"
	"github.com/wippyai/csnappy/fault"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		decompress  = flag.Bool("d", false, "Decompress instead of compress")
		check       = flag.Bool("check", false, "Validate input as snappy data and exit")
		stat        = flag.Bool("stat", false, "Print sizes and ratio instead of writing output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		fault.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *decompress, *check, *stat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, decompress, check, stat bool) error {
	in, err := readInput(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if check {
		if !csnappy.Validate(in.Bytes()) {
			return fmt.Errorf("input is not valid snappy data")
		}
		fmt.Println("valid snappy data")
		return nil
	}

	if decompress {
		buf, err := csnappy.Uncompress(in.Bytes())
		if err != nil {
			return err
		}
		if stat {
			printStat(buf.Len(), in.Len())
			return nil
		}
		return writeOutput(outFile, buf.Bytes())
	}

	buf := csnappy.Compress(in.Bytes())
	if stat {
		printStat(in.Len(), buf.Len())
		return nil
	}
	return writeOutput(outFile, buf.Bytes())
}

func printStat(uncompressed, compressed int) {
	ratio := 0.0
	if uncompressed > 0 {
		ratio = float64(compressed) / float64(uncompressed)
	}
	fmt.Printf("Uncompressed: %d bytes\n", uncompressed)
	fmt.Printf("Compressed:   %d bytes\n", compressed)
	fmt.Printf("Ratio:        %.2f%%\n", ratio*100)
}

// readInput adopts the raw input bytes into an owned buffer; nothing else
// aliases the slice after this returns.
func readInput(path string) (*buffer.Buffer, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return buffer.FromBytes(data), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
