// Package logic implements the term/formula model, regular-form
// canonicalization, and the deduction bookkeeping types that the
// rule engine builds on. It has no knowledge of any particular rule;
// see internal/logic/rules for the rule catalog and search.
package logic

import "fmt"

// QualifiedName identifies a rule by namespace and local name, e.g.
// logic::DoubleNegate.
type QualifiedName struct {
	Namespace string
	Local     string
}

// NewQualifiedName builds a QualifiedName in the given namespace.
func NewQualifiedName(namespace, local string) QualifiedName {
	return QualifiedName{Namespace: namespace, Local: local}
}

func (q QualifiedName) String() string {
	return fmt.Sprintf("%s::%s", q.Namespace, q.Local)
}

// Equal reports whether two qualified names denote the same rule.
func (q QualifiedName) Equal(other QualifiedName) bool {
	return q.Namespace == other.Namespace && q.Local == other.Local
}
