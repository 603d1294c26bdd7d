// Package tldraw renders diagrams by running the tldraw command line exporter.
package tldraw

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Converter = (*Converter)(nil)

// flagNames maps option keys to the exporter's flag names.
var flagNames = map[string]string{
	domain.OptFormat:      "format",
	domain.OptPage:        "pages",
	domain.OptFrame:       "frames",
	domain.OptScale:       "scale",
	domain.OptPadding:     "padding",
	domain.OptDark:        "dark",
	domain.OptTransparent: "transparent",
	domain.OptStripStyle:  "strip-style",
}

// Converter implements ports.Converter using os/exec.
type Converter struct {
	command []string
	logger  ports.Logger
}

// NewConverter creates a Converter that invokes command, e.g. ["tldraw"] or
// ["npx", "@kitschpatrol/tldraw-cli"], unless a request carries its own command.
// Converter diagnostics are reported as warnings.
func NewConverter(command []string, logger ports.Logger) *Converter {
	return &Converter{
		command: command,
		logger:  logger,
	}
}

// Convert runs "<command> export <source> --output=<dir> --name=<name> ..." and
// returns the file paths the exporter prints on stdout, one per line.
func (c *Converter) Convert(ctx context.Context, req domain.RenderRequest) ([]string, error) {
	command := c.command
	if len(req.Command) > 0 {
		command = req.Command
	}
	if len(command) == 0 {
		return nil, domain.ErrConverterNotConfigured
	}

	args := slices.Concat(command[1:], buildArgs(req))
	cmd := exec.CommandContext(ctx, command[0], args...) //nolint:gosec // user configured command

	var stdout, stderr bytes.Buffer
	warnings := &lineWriter{logger: c.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = &teeWriter{buf: &stderr, next: warnings}

	err := cmd.Run()
	warnings.Flush()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.Wrap(err, domain.ErrConversionFailed.Error())
		err = zerr.With(err, "source", req.Source)
		err = zerr.With(err, "exit_code", exitCode)
		if tail := strings.TrimSpace(stderr.String()); tail != "" {
			err = zerr.With(err, "stderr", tail)
		}
		return nil, err
	}

	outputs := parseOutputs(stdout.String())
	if len(outputs) == 0 {
		err := zerr.Wrap(domain.ErrConverterNoOutput, domain.ErrConversionFailed.Error())
		return nil, zerr.With(err, "source", req.Source)
	}
	return outputs, nil
}

// buildArgs renders the exporter arguments. Values are forwarded verbatim.
// Only known option keys are passed; the rest exist solely in the cache key.
func buildArgs(req domain.RenderRequest) []string {
	args := []string{
		"export",
		req.Source,
		"--output=" + req.OutputDir,
		"--name=" + req.Name,
	}
	for _, key := range domain.ConverterOptionKeys {
		value, ok := req.Options[key]
		if !ok {
			continue
		}
		if value == "" && (key == domain.OptPage || key == domain.OptFrame) {
			continue
		}
		args = append(args, "--"+flagNames[key]+"="+value)
	}
	return args
}

func parseOutputs(stdout string) []string {
	var outputs []string
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			outputs = append(outputs, line)
		}
	}
	return outputs
}

type teeWriter struct {
	buf  *bytes.Buffer
	next *lineWriter
}

func (w *teeWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	return w.next.Write(p)
}

// lineWriter forwards complete lines to the logger, buffering partial writes.
type lineWriter struct {
	logger  ports.Logger
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.pending[:i]))
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *lineWriter) Flush() {
	if len(w.pending) > 0 {
		w.emit(string(w.pending))
		w.pending = nil
	}
}

func (w *lineWriter) emit(line string) {
	if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) == "" {
		return
	}
	w.logger.Warn(line)
}
