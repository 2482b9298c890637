package predicate

import "testing"

func TestAnd(t *testing.T) {
	p := GreaterThan(2).And(LessThan(10))
	if !p(5) {
		t.Error("5 should satisfy 2 < x < 10")
	}
	if p(1) {
		t.Error("1 should not satisfy 2 < x < 10")
	}
	if p(11) {
		t.Error("11 should not satisfy 2 < x < 10")
	}
}

func TestOr(t *testing.T) {
	p := Equals("a").Or(Equals("b"))
	if !p("a") || !p("b") {
		t.Error("a and b should satisfy the predicate")
	}
	if p("c") {
		t.Error("c should not satisfy the predicate")
	}
}

func TestNegate(t *testing.T) {
	p := Equals(0).Negate()
	if p(0) {
		t.Error("0 should be rejected")
	}
	if !p(1) {
		t.Error("1 should be accepted")
	}
}

func TestAll_Empty(t *testing.T) {
	p := All[int]()
	if !p(42) {
		t.Error("empty conjunction should always be true")
	}
}

func TestAll(t *testing.T) {
	p := All(GreaterThan(0), LessThan(100), NotEquals(50))
	if !p(10) {
		t.Error("10 should pass all predicates")
	}
	if p(50) {
		t.Error("50 should fail NotEquals(50)")
	}
}

func TestAny_Empty(t *testing.T) {
	p := Any[int]()
	if p(42) {
		t.Error("empty disjunction should always be false")
	}
}

func TestAny(t *testing.T) {
	p := Any(Equals(1), Equals(2))
	if !p(2) {
		t.Error("2 should pass")
	}
	if p(3) {
		t.Error("3 should fail")
	}
}

func TestIn(t *testing.T) {
	p := In("red", "green", "blue")
	if !p("green") {
		t.Error("green should be in the set")
	}
	if p("mauve") {
		t.Error("mauve should not be in the set")
	}
}

func TestIsZero_NonZero(t *testing.T) {
	if !IsZero[int]()(0) {
		t.Error("0 should be zero")
	}
	if IsZero[string]()("x") {
		t.Error("x should not be zero")
	}
	if !NonZero[string]()("x") {
		t.Error("x should be non-zero")
	}
}

func TestContains(t *testing.T) {
	p := Contains("err")
	if !p("internal error") {
		t.Error("expected match")
	}
	if p("ok") {
		t.Error("expected no match")
	}
}

func TestHasPrefix(t *testing.T) {
	p := HasPrefix("user.")
	if !p("user.created") {
		t.Error("expected match")
	}
	if p("order.created") {
		t.Error("expected no match")
	}
}

func TestMatches(t *testing.T) {
	p := Matches(`^\d+$`)
	if !p("12345") {
		t.Error("digits should match")
	}
	if p("12a45") {
		t.Error("mixed should not match")
	}
}

func TestMatches_InvalidPattern(t *testing.T) {
	p := Matches("([")
	if p("anything") {
		t.Error("invalid pattern should reject everything")
	}
}

func TestTrueFalse(t *testing.T) {
	if !True[int]()(7) {
		t.Error("True should accept everything")
	}
	if False[int]()(7) {
		t.Error("False should reject everything")
	}
}
