package command

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/adhocteam/scaffold/internal/arith"
)

// Lex writes the located tokens of file to w in the given format: text, json
// or yaml.
func Lex(w io.Writer, file string, format string) error {
	text, err := readSource(file)
	if err != nil {
		return err
	}

	tokens, err := arith.Language.Lex(text)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	switch format {
	case "text":
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", tok.Pos, tok.Value); err != nil {
				return err
			}
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokens); err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tokens); err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
