// Package cli implements the httpenum command.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/arthur-teixeira/http-enum/config"
	"github.com/arthur-teixeira/http-enum/logger"
	"github.com/arthur-teixeira/http-enum/method"
	"github.com/arthur-teixeira/http-enum/status"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `usage: httpenum [-policy rfc7231|rfc9110] [-format yaml|json] class|code|method VALUE...`

// Record is one resolved (or rejected) input.
type Record struct {
	Input  string        `json:"input" yaml:"input"`
	Class  status.Class  `json:"class,omitempty" yaml:"class,omitempty"`
	Code   status.Code   `json:"code,omitempty" yaml:"code,omitempty"`
	Text   string        `json:"text,omitempty" yaml:"text,omitempty"`
	Method method.Method `json:"method,omitempty" yaml:"method,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

var errUsage = errors.New(usage)

// Run executes the command line in args (without the program name) and
// returns the process exit status.
func Run(args []string, stdout, stderr io.Writer, cfg config.Config) int {
	logger.SetOutput(stderr, stderr)
	logger.SetLogLevel(cfg.LogLevel)

	fs := flag.NewFlagSet("httpenum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	policyName := fs.String("policy", cfg.Policy, "integer classification policy: rfc7231 or rfc9110")
	format := fs.String("format", cfg.Format, "output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	policy, err := status.ParsePolicy(*policyName)
	if err != nil {
		logger.Error("%v", err)
		return ExitUsage
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(stderr, errUsage)
		return ExitUsage
	}

	var resolve func(string) Record
	switch rest[0] {
	case "class":
		resolve = func(v string) Record { return resolveClass(policy, v) }
	case "code":
		resolve = resolveCode
	case "method":
		resolve = resolveMethod
	default:
		fmt.Fprintln(stderr, errUsage)
		return ExitUsage
	}

	logger.Debug("resolving %d %s value(s) with policy %s", len(rest)-1, rest[0], policy)

	records := make([]Record, 0, len(rest)-1)
	failures := 0
	for _, v := range rest[1:] {
		r := resolve(v)
		if r.Error != "" {
			logger.Warn("%s", r.Error)
			failures++
		}
		records = append(records, r)
	}

	if err := write(stdout, *format, records); err != nil {
		logger.Error("writing output: %v", err)
		return ExitFailure
	}

	logger.Info("resolved %d %s value(s), %d failed", len(records), rest[0], failures)

	if failures > 0 {
		return ExitFailure
	}
	return ExitOK
}

func resolveClass(policy status.Policy, v string) Record {
	r := Record{Input: v}
	var err error
	if n, convErr := strconv.Atoi(v); convErr == nil {
		r.Class, err = policy.ClassFromInteger(n)
		if c, ok := status.TryCodeFromInteger(n); ok {
			r.Code, r.Text = c, c.Text()
		}
	} else {
		r.Class, err = status.ClassFromName(v)
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

func resolveCode(v string) Record {
	r := Record{Input: v}
	var (
		c   status.Code
		err error
	)
	if n, convErr := strconv.Atoi(v); convErr == nil {
		c, err = status.CodeFromInteger(n)
	} else {
		c, err = status.CodeFromName(v)
	}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Code, r.Text, r.Class = c, c.Text(), status.ClassFromCode(c)
	return r
}

func resolveMethod(v string) Record {
	r := Record{Input: v}
	m, err := method.FromName(v)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Method = m
	return r
}

func write(w io.Writer, format string, records []Record) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
