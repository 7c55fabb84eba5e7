// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

// Command loh is a thin CLI wrapper around the loh package: compress or
// decompress a file end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/coreos/pkg/capnslog"

	"github.com/wareya/loh"
)

var log = capnslog.NewPackageLogger("github.com/wareya/loh", "cmd")

// quietLogging drops the CLI down to only reporting program-ending errors.
func quietLogging() {
	capnslog.MustRepoLogger("github.com/wareya/loh").SetRepoLogLevel(capnslog.ERROR)
}

func main() {
	capnslog.SetFormatter(capnslog.NewStringFormatter(os.Stderr))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compress":
		err = runCompress(os.Args[2:])
	case "decompress":
		err = runDecompress(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: loh compress|decompress [flags]")
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	in := fs.String("in", "", "input file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	level := fs.Int("level", 4, "lookback level, -12..12 (0 disables lookback)")
	huffman := fs.Bool("huffman", true, "enable the Huffman entropy stage")
	stride := fs.Int("stride", 0, "delta filter stride, 0..16 (0 with -detect enables autodetection)")
	detect := fs.Bool("detect", true, "autodetect a profitable delta stride when -stride=0")
	threads := fs.Int("threads", runtime.NumCPU(), "chunk-level concurrency")
	quiet := fs.Bool("quiet", false, "suppress log output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *quiet {
		quietLogging()
	}

	data, err := readInput(*in)
	if err != nil {
		return err
	}

	cfg := loh.Config{
		Stride:        *stride,
		DetectStride:  *detect,
		LookbackLevel: *level,
		Huffman:       *huffman,
	}

	log.Infof("compressing %d bytes (level=%d huffman=%v stride=%d threads=%d)", len(data), *level, *huffman, *stride, *threads)
	out2, err := loh.Compress(data, cfg, *threads)
	if err != nil {
		return err
	}
	log.Infof("wrote %d bytes (%.1f%%)", len(out2), ratio(len(out2), len(data)))

	return writeOutput(*out, out2)
}

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	in := fs.String("in", "", "input file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	verify := fs.Bool("verify", true, "verify the stored checksum, if any")
	quiet := fs.Bool("quiet", false, "suppress log output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *quiet {
		quietLogging()
	}

	data, err := readInput(*in)
	if err != nil {
		return err
	}

	log.Infof("decompressing %d bytes (verify=%v)", len(data), *verify)
	out2, err := loh.Decompress(data, *verify)
	if err != nil {
		return err
	}
	log.Infof("wrote %d bytes", len(out2))

	return writeOutput(*out, out2)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func ratio(compressed, original int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original) * 100
}
