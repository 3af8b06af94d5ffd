// Package calc holds the pure calculation engines of the estimate editor:
// pleat-count recommendation, pleat fullness, billable area, product and
// option pricing, the row recalculation orchestrator, and estimate serial
// numbers.
//
// Every function here is synchronous and side-effect free. Degenerate input
// (zero width, missing price, division by zero) resolves to an empty/zero
// result and never to an error; only I/O layers report failures.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"daon_interior/internal/domain/entities"
)

// Fabric width formulas are keyed by "{curtainType}-{pleatType}-{sizeClass}"
// where sizeClass compares the product bolt width against 2000mm.

const (
	SizeClassNarrow = "2000이하"
	SizeClassWide   = "2000이상"

	// StandardBoltMM is the assumed bolt width when the catalog has none,
	// and the clamp target for bolts wider than 2000mm.
	StandardBoltMM = 1370.0

	wideBoltThresholdMM = 2000.0
)

// SizeClass classifies a product bolt width against the 2000mm threshold.
func SizeClass(productWidthMM float64) string {
	if productWidthMM > wideBoltThresholdMM {
		return SizeClassWide
	}
	return SizeClassNarrow
}

// FormulaKey builds the lookup key for a fullness formula.
func FormulaKey(curtainType entities.CurtainType, pleatType entities.PleatType, sizeClass string) string {
	return fmt.Sprintf("%s-%s-%s", curtainType, pleatType, sizeClass)
}

// Formula is a compiled arithmetic expression over the two bound variables
// widthMM and productWidth. Expressions are compiled once and evaluated many
// times; the grammar is numbers, + - * /, unary minus and parentheses only.
// There is no function call or general code execution surface.

type Formula struct {
	source string
	root   exprNode
}

// Source returns the original expression text.
func (f *Formula) Source() string { return f.source }

// Eval computes the formula. A non-finite result (division by zero etc.) is
// reported as ok=false.
func (f *Formula) Eval(widthMM, productWidth float64) (float64, bool) {
	v := f.root.eval(widthMM, productWidth)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Compile parses an expression into a Formula.
func Compile(expr string) (*Formula, error) {
	p := &exprParser{toks: tokenizeExpr(expr)}
	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, fmt.Errorf("unexpected %q", p.peek())
	}
	return &Formula{source: expr, root: root}, nil
}

func mustCompile(expr string) *Formula {
	f, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return f
}

type exprNode interface {
	eval(widthMM, productWidth float64) float64
}

type numNode float64

func (n numNode) eval(_, _ float64) float64 { return float64(n) }

type varNode int

const (
	varWidthMM varNode = iota
	varProductWidth
)

func (v varNode) eval(w, p float64) float64 {
	if v == varWidthMM {
		return w
	}
	return p
}

type binNode struct {
	op          byte
	left, right exprNode
}

func (b binNode) eval(w, p float64) float64 {
	l := b.left.eval(w, p)
	r := b.right.eval(w, p)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	default:
		return l / r // 0-divisor yields Inf/NaN, caught by Eval
	}
}

type negNode struct{ inner exprNode }

func (n negNode) eval(w, p float64) float64 { return -n.inner.eval(w, p) }

func tokenizeExpr(s string) []string {
	var toks []string
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.ContainsRune("+-*/()", rune(c)):
			toks = append(toks, string(c))
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		default:
			j := i
			for j < len(s) && !strings.ContainsRune("+-*/() \t", rune(s[j])) {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}
	return toks
}

type exprParser struct {
	toks []string
	pos  int
}

func (p *exprParser) eof() bool { return p.pos >= len(p.toks) }

func (p *exprParser) peek() string {
	if p.eof() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *exprParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *exprParser) parseSum() (exprNode, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.peek() == "+" || p.peek() == "-" {
		op := p.next()[0]
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *exprParser) parseProduct() (exprNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == "*" || p.peek() == "/" {
		op := p.next()[0]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *exprParser) parseUnary() (exprNode, error) {
	if p.peek() == "-" {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negNode{inner: inner}, nil
	}
	return p.parseAtom()
}

func (p *exprParser) parseAtom() (exprNode, error) {
	if p.eof() {
		return nil, errors.New("unexpected end of expression")
	}
	tok := p.next()
	switch tok {
	case "(":
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.next() != ")" {
			return nil, errors.New("unmatched parenthesis")
		}
		return inner, nil
	case "widthMM":
		return varWidthMM, nil
	case "productWidth":
		return varProductWidth, nil
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return numNode(v), nil
	}
	return nil, fmt.Errorf("unknown token %q", tok)
}

// builtinFormulas are the factory defaults per curtain layer, pleat style
// and bolt size class. Wide bolts divide by the standard 1370mm width
// instead of the actual bolt width.
var builtinFormulas = map[string]*Formula{
	FormulaKey(entities.CurtainTypeOuter, entities.PleatTypePlain, SizeClassNarrow):     mustCompile("widthMM*1.4/productWidth"),
	FormulaKey(entities.CurtainTypeOuter, entities.PleatTypeButterfly, SizeClassNarrow): mustCompile("widthMM*2/productWidth"),
	FormulaKey(entities.CurtainTypeOuter, entities.PleatTypePlain, SizeClassWide):       mustCompile("widthMM*1.4/1370"),
	FormulaKey(entities.CurtainTypeOuter, entities.PleatTypeButterfly, SizeClassWide):   mustCompile("widthMM*2/1370"),
	FormulaKey(entities.CurtainTypeInner, entities.PleatTypePlain, SizeClassNarrow):     mustCompile("widthMM*1.4/productWidth"),
	FormulaKey(entities.CurtainTypeInner, entities.PleatTypeButterfly, SizeClassNarrow): mustCompile("widthMM*2/productWidth"),
	FormulaKey(entities.CurtainTypeInner, entities.PleatTypePlain, SizeClassWide):       mustCompile("widthMM*1.4/1370"),
	FormulaKey(entities.CurtainTypeInner, entities.PleatTypeButterfly, SizeClassWide):   mustCompile("widthMM*2/1370"),
}

// IsBuiltinFormulaKey reports whether key names one of the factory default
// formulas. Built-in keys can be overridden but not deleted.
func IsBuiltinFormulaKey(key string) bool {
	_, ok := builtinFormulas[key]
	return ok
}

var ErrProtectedFormula = errors.New("built-in formula cannot be deleted")

// BuiltinSources returns the expression text of the factory defaults.
func BuiltinSources() map[string]string {
	out := make(map[string]string, len(builtinFormulas))
	for k, f := range builtinFormulas {
		out[k] = f.Source()
	}
	return out
}

// FormulaTable is the runtime mapping of user-edited fullness formulas.
// Callers evaluate through the table on every computation so edits take
// effect immediately; expressions are compiled once on Set.

type FormulaTable struct {
	mu       sync.RWMutex
	formulas map[string]*Formula
}

func NewFormulaTable() *FormulaTable {
	return &FormulaTable{formulas: make(map[string]*Formula)}
}

// Set compiles and stores an override for key.
func (t *FormulaTable) Set(key, expr string) error {
	f, err := Compile(expr)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.formulas[key] = f
	return nil
}

// Delete removes an override. Built-in keys fall back to the factory
// default and cannot be removed outright.
func (t *FormulaTable) Delete(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.formulas[key]; !ok && IsBuiltinFormulaKey(key) {
		return ErrProtectedFormula
	}
	delete(t.formulas, key)
	return nil
}

// Sources returns the expression text of every override, for persistence.
func (t *FormulaTable) Sources() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.formulas))
	for k, f := range t.formulas {
		out[k] = f.Source()
	}
	return out
}

// Replace swaps the whole override set, skipping entries that do not
// compile. Used when loading persisted formulas.
func (t *FormulaTable) Replace(sources map[string]string) {
	compiled := make(map[string]*Formula, len(sources))
	for k, expr := range sources {
		if f, err := Compile(expr); err == nil {
			compiled[k] = f
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.formulas = compiled
}

// Evaluate computes the formula for key, falling back to the built-in
// default when no override is set. ok=false means no formula exists for the
// key or the result was non-finite.
func (t *FormulaTable) Evaluate(key string, widthMM, productWidth float64) (float64, bool) {
	t.mu.RLock()
	f := t.formulas[key]
	t.mu.RUnlock()
	if f == nil {
		f = builtinFormulas[key]
	}
	if f == nil {
		return 0, false
	}
	return f.Eval(widthMM, productWidth)
}
