// Package specfile loads the YAML documents the CLI driver reads from
// disk before invoking the scanner and parser compilers. It only parses
// and reshapes; every semantic validation rule still lives in
// scanner.New/parser.New, never duplicated here.
package specfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// operatorEscapes maps the "\X" entries a scanner spec's expression values
// may contain to the literal operator character the core lexer expects.
// Mirrors the CLI-side translation the original driver performs before
// handing expressions to the scanner compiler.
var operatorEscapes = map[string]string{
	`\*`: "*", `\+`: "+", `\.`: ".", `\|`: "|", `\?`: "?",
	`\(`: "(", `\)`: ")", `\[`: "[", `\]`: "]", `\-`: "-", `\^`: "^",
}

// ScannerDoc is the on-disk shape of a scanner specification document.
type ScannerDoc struct {
	Name        string              `yaml:"name"`
	Expressions map[string][]string `yaml:"expressions"`
}

// ParserDoc is the on-disk shape of a parser specification document.
type ParserDoc struct {
	Name        string              `yaml:"name"`
	Start       string              `yaml:"start"`
	Productions map[string][][]string `yaml:"productions"`
}

// LoadScanner reads and decodes a scanner spec file, translating any "\X"
// operator-escape element of each expression into its literal character.
func LoadScanner(path string) (string, map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("specfile: %s: %w", path, err)
	}

	var doc ScannerDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", nil, fmt.Errorf("specfile: %s: %w", path, err)
	}

	expressions := make(map[string]string, len(doc.Expressions))
	for name, chars := range doc.Expressions {
		pattern := make([]byte, 0, len(chars))
		for _, c := range chars {
			if lit, ok := operatorEscapes[c]; ok {
				c = lit
			}
			pattern = append(pattern, c...)
		}
		expressions[name] = string(pattern)
	}

	return doc.Name, expressions, nil
}

// LoadParser reads and decodes a parser spec file.
func LoadParser(path string) (string, map[string][][]string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, "", fmt.Errorf("specfile: %s: %w", path, err)
	}

	var doc ParserDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", nil, "", fmt.Errorf("specfile: %s: %w", path, err)
	}

	return doc.Name, doc.Productions, doc.Start, nil
}
