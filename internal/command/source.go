package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adhocteam/scaffold"
	"github.com/adhocteam/scaffold/internal/arith"
	"github.com/adhocteam/scaffold/source"
)

// Stdin is read when a command is given "-" as its file.
var Stdin io.Reader = os.Stdin

func readSource(file string) (string, error) {
	var (
		b   []byte
		err error
	)
	if file == "-" {
		b, err = io.ReadAll(Stdin)
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(b), nil
}

// evalFile parses and evaluates the file at path.
func evalFile(path string) (float64, error) {
	text, err := readSource(path)
	if err != nil {
		return 0, err
	}
	e, err := arith.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	v, err := arith.Eval(e)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// logFailure logs err with the position and stage it carries, if any.
func logFailure(logger *slog.Logger, path string, err error) {
	attrs := []any{"file", path}
	var se *scaffold.Error
	var pe *source.Error
	switch {
	case errors.As(err, &se):
		attrs = append(attrs, "stage", se.Stage().String(), "pos", se.Pos().String())
	case errors.As(err, &pe):
		attrs = append(attrs, "stage", "eval", "pos", pe.Pos.String())
	}
	attrs = append(attrs, "err", err)
	logger.Error("Check failed", attrs...)
}
