/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command eventlint decodes DynamoDB stream and EventBridge payloads, checks
// that they survive an encode and decode round trip, and prints them in
// normalized form.
//
// Usage:
//
//	eventlint [flags] [file ...]
//
// With no files, or with "-", the payload is read from standard input.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/streamevents"
	"github.com/suparena/streamevents/attribute"
	"github.com/suparena/streamevents/dynamodbevent"
	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/eventbridge"
)

type options struct {
	source   string
	output   string
	maxDepth int
	quiet    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("eventlint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		versionFlag = fs.Bool("version", false, "Show version information")
		vFlag       = fs.Bool("v", false, "Show version information (short)")
		verbose     = fs.Bool("verbose", false, "Log decoding details")
		opts        options
	)
	fs.StringVar(&opts.source, "source", "auto", "Payload kind: auto, dynamodb or eventbridge")
	fs.StringVar(&opts.output, "o", "json", "Output format: json or yaml")
	fs.IntVar(&opts.maxDepth, "max-depth", attribute.DefaultMaxDepth, "Deepest attribute value nesting accepted")
	fs.BoolVar(&opts.quiet, "q", false, "Check only, print nothing on success")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag || *vFlag {
		info := streamevents.GetVersionInfo()
		fmt.Fprintf(stdout, "streamevents eventlint version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return 0
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.source != "auto" {
		if _, ok := streamevents.ParseSource(opts.source); !ok {
			logger.Error("unknown source", "source", opts.source)
			return 2
		}
	}
	if opts.output != "json" && opts.output != "yaml" {
		logger.Error("unknown output format", "format", opts.output)
		return 2
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	status := 0
	for _, name := range files {
		log := logger.With("file", name)
		data, err := readInput(name, stdin)
		if err != nil {
			log.Error("read failed", "error", err)
			status = 1
			continue
		}

		out, err := lint(data, opts, log)
		if err != nil {
			attrs := []any{"error", err}
			if path, ok := errors.PathOf(err); ok {
				attrs = append(attrs, "path", path)
			}
			log.Error("invalid payload", attrs...)
			status = 1
			continue
		}
		if opts.quiet {
			continue
		}
		if err := render(stdout, out, opts.output); err != nil {
			log.Error("render failed", "error", err)
			status = 1
		}
	}
	return status
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// lint decodes one payload and returns its normalized JSON encoding.
func lint(data []byte, opts options, log *slog.Logger) ([]byte, error) {
	source := streamevents.Source(opts.source)
	if opts.source == "auto" {
		detected, err := streamevents.Detect(data)
		if err != nil {
			return nil, err
		}
		source = detected
	}
	log.Debug("payload source", "source", source)

	switch source {
	case streamevents.SourceDynamoDBStream:
		return lintStream(data, opts, log)
	case streamevents.SourceEventBridge:
		return lintEventBridge(data, log)
	}
	return nil, fmt.Errorf("cannot tell the payload kind, pass -source")
}

func lintStream(data []byte, opts options, log *slog.Logger) ([]byte, error) {
	decodeOpts := []attribute.DecodeOption{attribute.WithMaxDepth(opts.maxDepth)}

	ev, err := dynamodbevent.Decode(data, decodeOpts...)
	if err != nil {
		return nil, err
	}
	for i, r := range ev.Records {
		log.Debug("record",
			"index", i,
			"eventID", r.EventID,
			"eventName", r.EventName,
			"sequenceNumber", r.Change.SequenceNumber,
			"ttl", r.IsTimeToLiveExpiry(),
		)
	}

	out, err := dynamodbevent.Encode(ev)
	if err != nil {
		return nil, err
	}
	back, err := dynamodbevent.Decode(out, decodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("re-decode of encoded output failed: %w", err)
	}
	if !ev.Equal(back) {
		return nil, fmt.Errorf("round trip changed the event")
	}
	log.Info("stream payload ok", "records", len(ev.Records))
	return out, nil
}

func lintEventBridge(data []byte, log *slog.Logger) ([]byte, error) {
	ev, err := eventbridge.DecodeRaw(data)
	if err != nil {
		return nil, err
	}
	if _, err := ev.Timestamp(); err != nil {
		log.Warn("event time is not ISO-8601", "time", ev.Time)
	}
	if _, err := ev.UUID(); err != nil {
		log.Debug("event id is not a UUID", "id", ev.ID)
	}

	out, err := eventbridge.Encode(ev)
	if err != nil {
		return nil, err
	}
	log.Info("eventbridge payload ok", "source", ev.Source, "detailType", ev.DetailType)
	return out, nil
}

func render(w io.Writer, data []byte, format string) error {
	if format == "json" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
