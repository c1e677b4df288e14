package main

// Extract a LinkedIn profile export to JSON:
//   go run ./cmd/linkedin-extract -in Profile.pdf -pretty
//   cat profile.txt | go run ./cmd/linkedin-extract

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/internal/textsource"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linkedin-extract", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputPath string
		vocabPath string
		pretty    bool
		verbose   bool
		timeout   time.Duration
	)
	fs.StringVar(&inputPath, "in", "-", "Path to a PDF, DOCX or text export; - reads stdin")
	fs.StringVar(&vocabPath, "vocab", os.Getenv("VOCABULARY_FILE"), "Optional vocabulary YAML replacing the embedded tables")
	fs.BoolVar(&pretty, "pretty", false, "Indent JSON output")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "Maximum time spent reading the input")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	telemetry.Setup(stderr, level, "console")

	ex, err := bootstrap.BuildExtractor(vocabPath)
	if err != nil {
		telemetry.Error("vocabulary failed", map[string]any{"error": err.Error()})
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var text string
	if inputPath == "-" || inputPath == "" {
		text, err = textsource.FromReader(ctx, stdin, "", "stdin")
	} else {
		text, err = textsource.FromFile(ctx, inputPath)
	}
	if err != nil {
		telemetry.Error("read failed", map[string]any{"in": inputPath, "error": err.Error()})
		return 1
	}
	telemetry.Debug("input read", map[string]any{"in": inputPath, "bytes": len(text)})

	res := ex.Extract(text)
	telemetry.Debug("extracted", map[string]any{
		"strategy":    res.Strategy,
		"confidence":  res.Confidence,
		"experiences": len(res.Experiences),
		"skills":      len(res.Skills),
	})

	enc := json.NewEncoder(stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}
