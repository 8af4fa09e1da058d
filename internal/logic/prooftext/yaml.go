package prooftext

import (
	"fmt"

	"github.com/beadslogic/prove/internal/logic"
)

// termYAML is the marshaled shape of a Term: exactly one of Var,
// Const, or Fun is set.
type termYAML struct {
	Var   string     `yaml:"var,omitempty"`
	Const string     `yaml:"const,omitempty"`
	Fun   string     `yaml:"fun,omitempty"`
	Args  []termYAML `yaml:"args,omitempty"`
}

type implyYAML struct {
	P formulaYAML `yaml:"p"`
	Q formulaYAML `yaml:"q"`
}

type quantYAML struct {
	Var  string      `yaml:"var"`
	Body formulaYAML `yaml:"body"`
}

// formulaYAML is the marshaled shape of a Formula: exactly one field
// group is set, matching one of the Formula constructors. Pattern-only
// holes have no place in a saved problem and are not represented.
type formulaYAML struct {
	Pred   string        `yaml:"pred,omitempty"`
	Named  string        `yaml:"named,omitempty"`
	Args   []termYAML    `yaml:"args,omitempty"`
	Not    *formulaYAML  `yaml:"not,omitempty"`
	And    []formulaYAML `yaml:"and,omitempty"`
	Or     []formulaYAML `yaml:"or,omitempty"`
	Imply  *implyYAML    `yaml:"imply,omitempty"`
	Equiv  *implyYAML    `yaml:"equiv,omitempty"`
	ForAll *quantYAML    `yaml:"forall,omitempty"`
	Exist  *quantYAML    `yaml:"exist,omitempty"`
}

type documentYAML struct {
	Facts []formulaYAML `yaml:"facts"`
	Goal  *formulaYAML  `yaml:"goal,omitempty"`
}

func toTerm(t termYAML) (logic.Term, error) {
	switch {
	case t.Var != "":
		return logic.NewVar(logic.Variable(t.Var)), nil
	case t.Const != "":
		return logic.NewConst(logic.Constant(t.Const)), nil
	case t.Fun != "":
		args := make([]logic.Term, 0, len(t.Args))
		for i, a := range t.Args {
			at, err := toTerm(a)
			if err != nil {
				return logic.Term{}, fmt.Errorf("arg %d: %w", i, err)
			}
			args = append(args, at)
		}
		return logic.NewFun(logic.Function(t.Fun), args...), nil
	default:
		return logic.Term{}, fmt.Errorf("term has none of var/const/fun set")
	}
}

func fromTerm(t logic.Term) termYAML {
	switch t.Kind() {
	case logic.TermVar:
		return termYAML{Var: string(t.Var())}
	case logic.TermConst:
		return termYAML{Const: string(t.Const())}
	case logic.TermFun:
		args := make([]termYAML, len(t.Args()))
		for i, a := range t.Args() {
			args[i] = fromTerm(a)
		}
		return termYAML{Fun: string(t.Fun()), Args: args}
	default:
		return termYAML{}
	}
}

func toTerms(ts []termYAML) ([]logic.Term, error) {
	out := make([]logic.Term, 0, len(ts))
	for i, t := range ts {
		v, err := toTerm(t)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func fromTerms(ts []logic.Term) []termYAML {
	out := make([]termYAML, len(ts))
	for i, t := range ts {
		out[i] = fromTerm(t)
	}
	return out
}

func toFormula(f formulaYAML) (*logic.Formula, error) {
	switch {
	case f.Pred != "":
		args, err := toTerms(f.Args)
		if err != nil {
			return nil, err
		}
		return logic.NewPredicate(f.Pred, args...), nil
	case f.Named != "":
		args, err := toTerms(f.Args)
		if err != nil {
			return nil, err
		}
		return logic.NewNamed(f.Named, args...), nil
	case f.Not != nil:
		child, err := toFormula(*f.Not)
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		return logic.NewNot(child), nil
	case f.And != nil:
		children, err := toFormulas(f.And)
		if err != nil {
			return nil, fmt.Errorf("and: %w", err)
		}
		return logic.NewAnd(children...), nil
	case f.Or != nil:
		children, err := toFormulas(f.Or)
		if err != nil {
			return nil, fmt.Errorf("or: %w", err)
		}
		return logic.NewOr(children...), nil
	case f.Imply != nil:
		p, err := toFormula(f.Imply.P)
		if err != nil {
			return nil, fmt.Errorf("imply.p: %w", err)
		}
		q, err := toFormula(f.Imply.Q)
		if err != nil {
			return nil, fmt.Errorf("imply.q: %w", err)
		}
		return logic.NewImply(p, q), nil
	case f.Equiv != nil:
		p, err := toFormula(f.Equiv.P)
		if err != nil {
			return nil, fmt.Errorf("equiv.p: %w", err)
		}
		q, err := toFormula(f.Equiv.Q)
		if err != nil {
			return nil, fmt.Errorf("equiv.q: %w", err)
		}
		return logic.NewEquiv(p, q), nil
	case f.ForAll != nil:
		body, err := toFormula(f.ForAll.Body)
		if err != nil {
			return nil, fmt.Errorf("forall.body: %w", err)
		}
		return logic.NewForAll(logic.Variable(f.ForAll.Var), body), nil
	case f.Exist != nil:
		body, err := toFormula(f.Exist.Body)
		if err != nil {
			return nil, fmt.Errorf("exist.body: %w", err)
		}
		return logic.NewExist(logic.Variable(f.Exist.Var), body), nil
	default:
		return nil, fmt.Errorf("formula node has no recognized field set")
	}
}

func toFormulas(fs []formulaYAML) ([]*logic.Formula, error) {
	out := make([]*logic.Formula, 0, len(fs))
	for i, f := range fs {
		v, err := toFormula(f)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func fromFormula(f *logic.Formula) formulaYAML {
	switch f.Kind() {
	case logic.FPredicate:
		return formulaYAML{Pred: f.Pred(), Args: fromTerms(f.Args())}
	case logic.FNamed:
		return formulaYAML{Named: f.Pred(), Args: fromTerms(f.Args())}
	case logic.FNot:
		child := fromFormula(f.Child())
		return formulaYAML{Not: &child}
	case logic.FAnd:
		return formulaYAML{And: fromFormulas(f.Children())}
	case logic.FOr:
		return formulaYAML{Or: fromFormulas(f.Children())}
	case logic.FImply:
		return formulaYAML{Imply: &implyYAML{P: fromFormula(f.P()), Q: fromFormula(f.Q())}}
	case logic.FEquiv:
		return formulaYAML{Equiv: &implyYAML{P: fromFormula(f.P()), Q: fromFormula(f.Q())}}
	case logic.FForAll:
		return formulaYAML{ForAll: &quantYAML{Var: string(f.QVar()), Body: fromFormula(f.Body())}}
	case logic.FExist:
		return formulaYAML{Exist: &quantYAML{Var: string(f.QVar()), Body: fromFormula(f.Body())}}
	default:
		return formulaYAML{}
	}
}

func fromFormulas(fs []*logic.Formula) []formulaYAML {
	out := make([]formulaYAML, len(fs))
	for i, f := range fs {
		out[i] = fromFormula(f)
	}
	return out
}
