package fn

import (
	"testing"
)

const (
	one   = "1"
	two   = "2"
	three = "3"
)

func concat2(first string, second string) string {
	return first + second
}

func concat3(first string, second string, third string) string {
	return first + second + third
}

func mustPanicWith(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if r != want {
			t.Fatalf("expected panic %q, got %v", want, r)
		}
	}()
	f()
}

func TestAll(t *testing.T) {
	t.Parallel()
	calls := 0
	supplier := All(func(s string) string {
		calls++
		return s + "!"
	}, one)

	if got := supplier(); got != "1!" {
		t.Fatalf("expected 1!, got %q", got)
	}
	if got := supplier(); got != "1!" {
		t.Fatalf("expected 1! on second call, got %q", got)
	}
	if calls != 2 {
		t.Fatalf("expected the function to run once per supplier call, got %d calls", calls)
	}
}

func TestLeft2(t *testing.T) {
	t.Parallel()
	if got := Left2(concat2)(one)(two); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestLeft2With(t *testing.T) {
	t.Parallel()
	if got := Left2With(concat2, one)(two); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestAll2(t *testing.T) {
	t.Parallel()
	if got := All2(concat2, one, two)(); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestLeft3(t *testing.T) {
	t.Parallel()
	if got := Left3[string, string, string, string](concat3)(one)(two)(three); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestLeft3With(t *testing.T) {
	t.Parallel()
	if got := Left3With[string, string, string, string](concat3, one)(two)(three); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestLeft3With2(t *testing.T) {
	t.Parallel()
	if got := Left3With2[string, string, string, string](concat3, one, two)(three); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestAll3(t *testing.T) {
	t.Parallel()
	calls := 0
	supplier := All3[string, string, string, string](func(a, b, c string) string {
		calls++
		return a + b + c
	}, one, two, three)

	if got := supplier(); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
	supplier()
	if calls != 2 {
		t.Fatalf("expected two underlying calls, got %d", calls)
	}
}

func TestLeftMiddle3(t *testing.T) {
	t.Parallel()
	// the bound value is the middle argument, callers supply first then third
	if got := LeftMiddle3[string, string, string, string](concat3, two)(one)(three); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestMiddle3(t *testing.T) {
	t.Parallel()
	if got := Middle3[string, string, string, string](concat3, one, three)(two); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestRightMiddle3(t *testing.T) {
	t.Parallel()
	if got := RightMiddle3[string, string, string, string](concat3, two)(three)(one); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestRight2(t *testing.T) {
	t.Parallel()
	if got := Right2(concat2)(two)(one); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestRight2With(t *testing.T) {
	t.Parallel()
	if got := Right2With(concat2, two)(one); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestRight3(t *testing.T) {
	t.Parallel()
	if got := Right3[string, string, string, string](concat3)(three)(two)(one); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestRight3With(t *testing.T) {
	t.Parallel()
	if got := Right3With[string, string, string, string](concat3, three)(two)(one); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestRight3With2(t *testing.T) {
	t.Parallel()
	if got := Right3With2[string, string, string, string](concat3, two, three)(one); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestBiLeft3(t *testing.T) {
	t.Parallel()
	if got := BiLeft3[string, string, string, string](concat3, one)(two, three); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestBiMiddle3(t *testing.T) {
	t.Parallel()
	if got := BiMiddle3[string, string, string, string](concat3, two)(one, three); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestBiRight3(t *testing.T) {
	t.Parallel()
	if got := BiRight3[string, string, string, string](concat3, three)(one, two); got != "123" {
		t.Fatalf("expected 123, got %q", got)
	}
}

func TestDeferredEvaluation(t *testing.T) {
	t.Parallel()
	calls := 0
	chain := Left3[string, string, string, string](func(a, b, c string) string {
		calls++
		return a + b + c
	})

	step1 := chain(one)
	step2 := step1(two)
	if calls != 0 {
		t.Fatalf("expected no underlying call before the last argument, got %d", calls)
	}
	if got := step2(three); got != "123" || calls != 1 {
		t.Fatalf("expected 123 with one call, got %q with %d calls", got, calls)
	}
}

func TestNilFunctionPanics(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		want string
		call func()
	}{
		{"All", "the function must not be nil", func() { All[string, string](nil, one) }},
		{"Left2", "the bi-function must not be nil", func() { Left2[string, string, string](nil) }},
		{"Left2With", "the bi-function must not be nil", func() { Left2With[string, string, string](nil, one) }},
		{"All2", "the bi-function must not be nil", func() { All2[string, string, string](nil, one, two) }},
		{"Left3", "the ter-function must not be nil", func() { Left3[string, string, string, string](nil) }},
		{"Left3With", "the ter-function must not be nil", func() { Left3With[string, string, string, string](nil, one) }},
		{"Left3With2", "the ter-function must not be nil", func() { Left3With2[string, string, string, string](nil, one, two) }},
		{"All3", "the ter-function must not be nil", func() { All3[string, string, string, string](nil, one, two, three) }},
		{"LeftMiddle3", "the ter-function must not be nil", func() { LeftMiddle3[string, string, string, string](nil, two) }},
		{"Middle3", "the ter-function must not be nil", func() { Middle3[string, string, string, string](nil, one, three) }},
		{"RightMiddle3", "the ter-function must not be nil", func() { RightMiddle3[string, string, string, string](nil, two) }},
		{"Right2", "the bi-function must not be nil", func() { Right2[string, string, string](nil) }},
		{"Right2With", "the bi-function must not be nil", func() { Right2With[string, string, string](nil, two) }},
		{"Right3", "the ter-function must not be nil", func() { Right3[string, string, string, string](nil) }},
		{"Right3With", "the ter-function must not be nil", func() { Right3With[string, string, string, string](nil, three) }},
		{"Right3With2", "the ter-function must not be nil", func() { Right3With2[string, string, string, string](nil, two, three) }},
		{"BiLeft3", "the ter-function must not be nil", func() { BiLeft3[string, string, string, string](nil, one) }},
		{"BiMiddle3", "the ter-function must not be nil", func() { BiMiddle3[string, string, string, string](nil, two) }},
		{"BiRight3", "the ter-function must not be nil", func() { BiRight3[string, string, string, string](nil, three) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mustPanicWith(t, tc.want, tc.call)
		})
	}
}
