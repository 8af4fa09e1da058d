package logic

// Deduction justifies one derivation step: rule Rule produced the
// formula Produced from Dependencies, which must already be present
// in the context or frontier. Metadata carries free-form per-rule
// side-information, e.g. which constant ExistConstant generalized.
type Deduction struct {
	Rule         QualifiedName
	Produced     *Formula
	Dependencies []*Formula
	Metadata     map[string]any
}

// NewDeduction builds a Deduction, defaulting Metadata to an empty map
// when nil is supplied so callers never need a nil check.
func NewDeduction(rule QualifiedName, produced *Formula, dependencies []*Formula, metadata map[string]any) Deduction {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return Deduction{Rule: rule, Produced: produced, Dependencies: dependencies, Metadata: metadata}
}

// TowardResult is the tagged result of a goal-directed rule
// application: either Reached, carrying the single deduction that
// closes the goal, or NotReached, carrying zero or more newly derived
// deductions.
type TowardResult struct {
	isReached  bool
	deduction  Deduction
	deductions []Deduction
}

// Reached builds a TowardResult around the deduction that closes the
// goal. The built-in rules call it when Produced has the goal's
// regular form, which need not be IsIdenticalTo the goal.
func Reached(d Deduction) TowardResult {
	return TowardResult{isReached: true, deduction: d}
}

// NotReached builds a TowardResult carrying the newly derived
// deductions (possibly none) that did not reach the goal.
func NotReached(ds ...Deduction) TowardResult {
	return TowardResult{deductions: ds}
}

// IsReached reports which variant r holds.
func (r TowardResult) IsReached() bool { return r.isReached }

// Deduction returns the closing deduction. Panics if !IsReached().
func (r TowardResult) Deduction() Deduction {
	if !r.isReached {
		panic("logic: Deduction() called on a NotReached result")
	}
	return r.deduction
}

// Deductions returns the newly derived deductions. Panics if IsReached().
func (r TowardResult) Deductions() []Deduction {
	if r.isReached {
		panic("logic: Deductions() called on a Reached result")
	}
	return r.deductions
}

// DeductionNode links a Deduction to the nodes justifying each of its
// dependencies, forming a proof DAG rooted at the goal (or, for a leaf,
// an identity step on an original context fact).
type DeductionNode struct {
	Deduction Deduction
	Children  []*DeductionNode
}

// NewDeductionNode builds a node from a deduction and its children.
func NewDeductionNode(d Deduction, children ...*DeductionNode) *DeductionNode {
	return &DeductionNode{Deduction: d, Children: children}
}

// RecurApply visits n and every descendant, depth-first, stopping as
// soon as visitor returns false. It returns false iff some visited
// node made visitor return false.
func (n *DeductionNode) RecurApply(visitor func(*DeductionNode) bool) bool {
	if n == nil {
		return true
	}
	if !visitor(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.RecurApply(visitor) {
			return false
		}
	}
	return true
}

// LeafDependencies returns the deduplicated formulas found at the
// leaves of the deduction DAG (nodes with no children, i.e. identity
// steps on original context facts), in first-visited order.
func (n *DeductionNode) LeafDependencies() []*Formula {
	var out []*Formula
	seen := map[string]bool{}
	n.RecurApply(func(cur *DeductionNode) bool {
		if len(cur.Children) == 0 {
			key := cur.Deduction.Produced.RegularForm().RegularKey()
			if !seen[key] {
				seen[key] = true
				out = append(out, cur.Deduction.Produced)
			}
		}
		return true
	})
	return out
}
