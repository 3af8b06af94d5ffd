package calc

import (
	"math"
	"testing"

	"daon_interior/internal/domain/entities"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompile_ValidExpressions(t *testing.T) {
	cases := []struct {
		expr         string
		widthMM      float64
		productWidth float64
		want         float64
	}{
		{"widthMM*1.4/productWidth", 2000, 1370, 2000 * 1.4 / 1370},
		{"widthMM*2/productWidth", 2200, 1370, 2200 * 2 / 1370},
		{"widthMM*2/1370", 2200, 2500, 2200 * 2 / 1370},
		{"(widthMM+100)*2/productWidth", 1000, 1000, 2.2},
		{"-widthMM + productWidth", 100, 300, 200},
		{"3.5", 0, 0, 3.5},
	}
	for _, tc := range cases {
		f, err := Compile(tc.expr)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tc.expr, err)
		}
		got, ok := f.Eval(tc.widthMM, tc.productWidth)
		if !ok {
			t.Fatalf("Eval(%q) not ok", tc.expr)
		}
		nearlyEqual(t, tc.expr, got, tc.want)
	}
}

func TestCompile_MalformedExpressions(t *testing.T) {
	for _, expr := range []string{
		"",
		"(widthMM*2",
		"widthMM**2",
		"widthMM*2)",
		"foo*2",
		"widthMM 2",
	} {
		if _, err := Compile(expr); err == nil {
			t.Fatalf("Compile(%q): expected error", expr)
		}
	}
}

func TestFormula_DivisionByZeroIsNotOK(t *testing.T) {
	f, err := Compile("widthMM/productWidth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.Eval(2000, 0); ok {
		t.Fatalf("expected non-finite result to report not ok")
	}
}

func TestFormulaTable_BuiltinDefaults(t *testing.T) {
	table := NewFormulaTable()

	key := FormulaKey(entities.CurtainTypeOuter, entities.PleatTypePlain, SizeClassNarrow)
	got, ok := table.Evaluate(key, 2000, 1370)
	if !ok {
		t.Fatalf("expected builtin default for %s", key)
	}
	nearlyEqual(t, "plain narrow", got, 2000*1.4/1370)

	wide := FormulaKey(entities.CurtainTypeOuter, entities.PleatTypeButterfly, SizeClassWide)
	got, ok = table.Evaluate(wide, 2200, 2500)
	if !ok {
		t.Fatalf("expected builtin default for %s", wide)
	}
	// Wide bolts divide by the standard 1370mm width, not the actual bolt.
	nearlyEqual(t, "butterfly wide", got, 2200*2/1370.0)

	if _, ok := table.Evaluate("no-such-key", 1000, 1370); ok {
		t.Fatalf("expected unknown key to report not ok")
	}
}

func TestFormulaTable_OverrideTakesEffectImmediately(t *testing.T) {
	table := NewFormulaTable()
	key := FormulaKey(entities.CurtainTypeOuter, entities.PleatTypePlain, SizeClassNarrow)

	if err := table.Set(key, "widthMM*3/productWidth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := table.Evaluate(key, 2000, 1370)
	if !ok {
		t.Fatalf("expected override to evaluate")
	}
	nearlyEqual(t, "override", got, 2000*3.0/1370)

	if err := table.Delete(key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = table.Evaluate(key, 2000, 1370)
	nearlyEqual(t, "back to default", got, 2000*1.4/1370)
}

func TestFormulaTable_SetRejectsMalformed(t *testing.T) {
	table := NewFormulaTable()
	if err := table.Set("k", "(widthMM*2"); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestFormulaTable_DeleteProtectsBuiltins(t *testing.T) {
	table := NewFormulaTable()
	key := FormulaKey(entities.CurtainTypeOuter, entities.PleatTypePlain, SizeClassNarrow)
	if err := table.Delete(key); err != ErrProtectedFormula {
		t.Fatalf("expected ErrProtectedFormula, got %v", err)
	}
}

func TestFormulaTable_SourcesRoundTrip(t *testing.T) {
	table := NewFormulaTable()
	if err := table.Set("a-b-c", "widthMM/2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored := NewFormulaTable()
	restored.Replace(table.Sources())
	got, ok := restored.Evaluate("a-b-c", 100, 0)
	if !ok {
		t.Fatalf("expected restored formula to evaluate")
	}
	nearlyEqual(t, "restored", got, 50)
}

func TestSizeClass(t *testing.T) {
	if SizeClass(1370) != SizeClassNarrow {
		t.Fatalf("1370 should be narrow")
	}
	if SizeClass(2000) != SizeClassNarrow {
		t.Fatalf("2000 should be narrow")
	}
	if SizeClass(2001) != SizeClassWide {
		t.Fatalf("2001 should be wide")
	}
}
