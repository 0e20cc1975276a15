package lambda

import (
	"strings"
	"testing"
)

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

func TestTerConsumer_AndThen_RunsBothOnSameArguments(t *testing.T) {
	t.Parallel()
	var calls []string
	first := TerConsumer[string, int, float64](func(s string, i int, f float64) {
		calls = append(calls, "first:"+s)
	})
	second := TerConsumer[string, int, float64](func(s string, i int, f float64) {
		calls = append(calls, "second:"+s)
	})

	first.AndThen(second)("a", 1, 2.0)

	if len(calls) != 2 || calls[0] != "first:a" || calls[1] != "second:a" {
		t.Fatalf("expected [first:a second:a], got %v", calls)
	}
}

func TestTerConsumer_AndThen_NilAfter(t *testing.T) {
	t.Parallel()
	c := TerConsumer[int, int, int](func(int, int, int) {})
	mustPanicWith(t, "the after-operation must not be nil", func() {
		c.AndThen(nil)
	})
}

func TestTerConsumer_AndThen_FirstPanicSuppressesSecond(t *testing.T) {
	t.Parallel()
	secondRan := false
	boom := TerConsumer[int, int, int](func(int, int, int) { panic("boom") })
	after := TerConsumer[int, int, int](func(int, int, int) { secondRan = true })
	seq := boom.AndThen(after)

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected panic boom, got %v", r)
			}
		}()
		seq(1, 2, 3)
	}()

	if secondRan {
		t.Fatalf("after-operation should not run when the first operation panics")
	}
}

func TestTerFunction_AndThen(t *testing.T) {
	t.Parallel()
	length := AndThen[string, string, string, string, int](concat3, func(s string) int {
		return len(s)
	})
	if got := length("1", "2", "3"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestTerFunction_AndThen_NilOperands(t *testing.T) {
	t.Parallel()
	mustPanicWith(t, "the ter-function must not be nil", func() {
		AndThen[string, string, string, string, int](nil, func(s string) int { return len(s) })
	})
	mustPanicWith(t, "the after-function must not be nil", func() {
		AndThen[string, string, string, string, int](concat3, nil)
	})
}

func TestTerPredicate_AndOrNegate(t *testing.T) {
	t.Parallel()
	p1 := TerPredicate[string, int, float64](func(s string, i int, f float64) bool {
		return len(s) > i && float64(i) > f
	})
	p2 := TerPredicate[string, int, float64](func(s string, i int, f float64) bool {
		return len(s) < i && float64(i) < f
	})

	if !p1("prefix-", 3, 1.1) {
		t.Fatalf("expected p1 to hold on (prefix-, 3, 1.1)")
	}
	if p2("prefix-", 3, 1.1) {
		t.Fatalf("expected p2 to fail on (prefix-, 3, 1.1)")
	}
	if p1.And(p2)("prefix-", 3, 1.1) {
		t.Fatalf("expected p1 and p2 to be false")
	}
	if !p1.Or(p2)("prefix-", 3, 1.1) {
		t.Fatalf("expected p1 or p2 to be true")
	}
	if p1.Negate()("prefix-", 3, 1.1) {
		t.Fatalf("expected negated p1 to be false")
	}
}

func TestTerPredicate_ShortCircuit(t *testing.T) {
	t.Parallel()
	otherCalls := 0
	other := TerPredicate[int, int, int](func(int, int, int) bool {
		otherCalls++
		return true
	})
	no := TerPredicate[int, int, int](func(int, int, int) bool { return false })
	yes := TerPredicate[int, int, int](func(int, int, int) bool { return true })

	if no.And(other)(1, 2, 3) {
		t.Fatalf("expected false from AND with false left operand")
	}
	if !yes.Or(other)(1, 2, 3) {
		t.Fatalf("expected true from OR with true left operand")
	}
	if otherCalls != 0 {
		t.Fatalf("expected other to be skipped, got %d calls", otherCalls)
	}
}

func TestTerPredicate_NilOther(t *testing.T) {
	t.Parallel()
	p := TerPredicate[string, string, string](func(a, b, c string) bool {
		return strings.Contains(a, b)
	})
	mustPanicWith(t, "the other-predicate must not be nil", func() { p.And(nil) })
	mustPanicWith(t, "the other-predicate must not be nil", func() { p.Or(nil) })
}
