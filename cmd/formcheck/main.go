// Command formcheck validates a record against one of the registration
// forms and prints the outcome as JSON.
//
//	formcheck [--form name] [--view flat|tree] [file]
//
// The record is read from file, or from standard input when file is absent
// or "-". Files ending in .yaml or .yml are read as YAML, anything else as
// JSON. The exit status is 0 for a valid record or --help, 1 for an invalid
// record and 2 for usage or input errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/forms"
	"github.com/Gobd/formvalidation/internal/config"
	"github.com/Gobd/formvalidation/internal/logger"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

type output struct {
	Valid  bool           `json:"valid"`
	Value  map[string]any `json:"value,omitempty"`
	Errors any            `json:"errors,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := pflag.NewFlagSet("formcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Form, "form", cfg.Form, "form to validate against: "+strings.Join(forms.Names(), ", "))
	fs.StringVar(&cfg.View, "view", cfg.View, "error view: flat or tree")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitValid
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: formcheck [--form name] [--view flat|tree] [file]")
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	schema, _ := forms.Lookup(cfg.Form)
	rec, err := readRecord(fs.Arg(0), stdin)
	if err != nil {
		log.Error("read input", zap.Error(err))
		return exitUsage
	}

	res := schema.SafeValidate(rec)
	out := output{Valid: res.OK(), Value: res.Value}
	if !res.OK() {
		if cfg.View == "tree" {
			out.Errors = res.Errors.Tree()
		} else {
			out.Errors = res.Errors.Flat()
		}
	}
	log.Debug("validated",
		zap.String("form", cfg.Form),
		zap.Bool("valid", out.Valid),
		zap.Int("errors", len(res.Errors)),
	)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("write output", zap.Error(err))
		return exitUsage
	}
	if !out.Valid {
		return exitInvalid
	}
	return exitValid
}

func readRecord(name string, stdin io.Reader) (v.Record, error) {
	if name == "" || name == "-" {
		return v.DecodeJSON(stdin)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return v.RecordFromYAML(b)
	}
	return v.RecordFromJSON(b)
}
