package logic

import "sort"

// FormulaContext is an ordered container of known formulas. It tracks
// both the sequence as entered by the caller and, per equivalence
// class under RegularForm, one representative.
type FormulaContext struct {
	formulas     []*Formula
	regularForms map[string]*Formula
	order        []string
}

// NewFormulaContext returns an empty context.
func NewFormulaContext() *FormulaContext {
	return &FormulaContext{regularForms: map[string]*Formula{}}
}

// Copy returns an independent context with the same contents; mutating
// the copy (via AddAll) never affects the receiver.
func (c *FormulaContext) Copy() *FormulaContext {
	nc := &FormulaContext{
		formulas:     append([]*Formula(nil), c.formulas...),
		regularForms: make(map[string]*Formula, len(c.regularForms)),
		order:        append([]string(nil), c.order...),
	}
	for k, v := range c.regularForms {
		nc.regularForms[k] = v
	}
	return nc
}

// AddAll appends xs to the formula sequence, registering a new
// equivalence-class representative for each regular form not already
// present.
func (c *FormulaContext) AddAll(xs []*Formula) {
	for _, f := range xs {
		c.add(f)
	}
}

func (c *FormulaContext) add(f *Formula) {
	c.formulas = append(c.formulas, f)
	key := f.RegularForm().RegularKey()
	if _, ok := c.regularForms[key]; !ok {
		c.regularForms[key] = f
		c.order = append(c.order, key)
	}
}

// Contains reports whether regular's equivalence class (keyed by its
// own regular form) is already present in the context.
func (c *FormulaContext) Contains(regular *Formula) bool {
	return c.ContainsKey(regular.RegularForm().RegularKey())
}

// ContainsKey reports whether the given regular-form key is present.
func (c *FormulaContext) ContainsKey(key string) bool {
	_, ok := c.regularForms[key]
	return ok
}

// Lookup returns the representative formula for a regular-form key, if any.
func (c *FormulaContext) Lookup(key string) (*Formula, bool) {
	f, ok := c.regularForms[key]
	return f, ok
}

// Formulas returns the sequence of formulas as entered, in order.
func (c *FormulaContext) Formulas() []*Formula {
	return append([]*Formula(nil), c.formulas...)
}

// RegularKeys returns every regular-form key currently registered, in
// the insertion order their equivalence class was first seen.
func (c *FormulaContext) RegularKeys() []string {
	return append([]string(nil), c.order...)
}

// SortedRegularForms returns one representative per equivalence class,
// sorted by DefaultComparator over their regular forms.
func (c *FormulaContext) SortedRegularForms() []*Formula {
	reps := make([]*Formula, 0, len(c.regularForms))
	for _, v := range c.regularForms {
		reps = append(reps, v)
	}
	sort.Slice(reps, func(i, j int) bool {
		return DefaultComparator(reps[i].RegularForm(), reps[j].RegularForm()) < 0
	})
	return reps
}
