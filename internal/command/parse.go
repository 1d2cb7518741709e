package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/adhocteam/scaffold/internal/arith"
)

// PrettyPrintAST parses file and prints its syntax tree to w, either as an
// indented tree or as JSON. With fold, constant operations are folded first.
func PrettyPrintAST(w io.Writer, file string, fold bool, asJSON bool) error {
	text, err := readSource(file)
	if err != nil {
		return err
	}

	e, err := arith.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	if fold {
		e = arith.Fold(e)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding syntax tree: %w", err)
		}
		return nil
	}

	arith.NewPrettyPrinter(w).PrettyPrint(e)

	return nil
}
