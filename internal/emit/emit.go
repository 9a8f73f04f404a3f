// Package emit is a thin demonstrative collaborator: it renders a compiled
// ScannerArtifact's transition table as literal Go source, showing how a
// real target-language emitter consumes the core's accessors without any
// emitter logic living inside the compilation pipeline itself.
package emit

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rrozansk/spag-go/scanner"
)

var goTableTemplate = template.Must(template.New("dfa").Parse(`// Code generated from scanner {{.Name}}. DO NOT EDIT.
package {{.Package}}

var {{.TableVar}} = map[string]map[rune]string{
{{- range $state, $row := .Table}}
	{{printf "%q" $state}}: {
{{- range $sym, $dest := $row}}
		{{printf "%q" $sym}}: {{printf "%q" $dest}},
{{- end}}
	},
{{- end}}
}

var {{.StartVar}} = {{printf "%q" .Start}}

var {{.FinalsVar}} = map[string]bool{
{{- range $state := .Finals}}
	{{printf "%q" $state}}: true,
{{- end}}
}
`))

type tableData struct {
	Name      string
	Package   string
	TableVar  string
	StartVar  string
	FinalsVar string
	Table     map[string]map[rune]string
	Start     string
	Finals    []string
}

// GoTable renders a.ScannerArtifact's DFA as a Go source file defining a
// transition table, start state, and accepting set, under the given
// package name.
func GoTable(a *scanner.ScannerArtifact, pkg string) (string, error) {
	stateIdx, symIdx, table := a.T()

	byState := make(map[string]int, len(stateIdx))
	for state, idx := range stateIdx {
		byState[state] = idx
	}
	bySym := make(map[rune]int, len(symIdx))
	for sym, idx := range symIdx {
		bySym[sym] = idx
	}

	rows := make(map[string]map[rune]string, len(byState))
	for state, si := range byState {
		row := make(map[rune]string, len(bySym))
		for sym, ci := range bySym {
			row[sym] = table[ci][si]
		}
		rows[state] = row
	}

	finals := a.F()
	finalNames := make([]string, 0, len(finals))
	for s := range finals {
		finalNames = append(finalNames, s)
	}

	data := tableData{
		Name:      a.Name(),
		Package:   pkg,
		TableVar:  varName(a.Name(), "Table"),
		StartVar:  varName(a.Name(), "Start"),
		FinalsVar: varName(a.Name(), "Finals"),
		Table:     rows,
		Start:     a.S(),
		Finals:    finalNames,
	}

	var sb strings.Builder
	if err := goTableTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("emit: %w", err)
	}
	return sb.String(), nil
}

func varName(scannerName, suffix string) string {
	parts := strings.FieldsFunc(scannerName, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	sb.WriteString(suffix)
	return sb.String()
}
