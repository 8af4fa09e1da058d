// Package prooftext is the textual load/save collaborator: a YAML
// document format for a FormulaContext plus a goal, used by cmd/prove
// to read problem files and nothing else in the core depends on it.
package prooftext

import (
	"fmt"
	"os"

	"github.com/beadslogic/prove/internal/logic"
	"gopkg.in/yaml.v3"
)

// Problem is a loaded context plus the goal to search for.
type Problem struct {
	Context *logic.FormulaContext
	Goal    *logic.Formula
}

// Load reads a YAML problem file from path.
func Load(path string) (*Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prooftext: reading %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML problem document.
func Parse(raw []byte) (*Problem, error) {
	var doc documentYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("prooftext: decoding yaml: %w", err)
	}

	ctx := logic.NewFormulaContext()
	facts := make([]*logic.Formula, 0, len(doc.Facts))
	for i, fy := range doc.Facts {
		f, err := toFormula(fy)
		if err != nil {
			return nil, fmt.Errorf("prooftext: fact %d: %w", i, err)
		}
		facts = append(facts, f)
	}
	ctx.AddAll(facts)

	var goal *logic.Formula
	if doc.Goal != nil {
		g, err := toFormula(*doc.Goal)
		if err != nil {
			return nil, fmt.Errorf("prooftext: goal: %w", err)
		}
		goal = g
	}

	return &Problem{Context: ctx, Goal: goal}, nil
}

// Save writes p back out as a YAML problem document.
func Save(path string, p *Problem) error {
	raw, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("prooftext: writing %s: %w", path, err)
	}
	return nil
}

// Marshal encodes p as a YAML problem document.
func Marshal(p *Problem) ([]byte, error) {
	doc := documentYAML{}
	for _, f := range p.Context.Formulas() {
		doc.Facts = append(doc.Facts, fromFormula(f))
	}
	if p.Goal != nil {
		g := fromFormula(p.Goal)
		doc.Goal = &g
	}
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("prooftext: encoding yaml: %w", err)
	}
	return raw, nil
}
