package owned

import "testing"

func TestEqual_SameReference(t *testing.T) {
	r := &plain{}
	a := Adopt(r)
	b := Adopt(r) // aliasing is a caller contract violation, but identity must still compare
	defer a.Close()
	defer b.Release() // escape b's claim so only a disposes r

	if !Equal(&a, &b) {
		t.Fatal("Handles holding the same reference should compare equal")
	}
	if NotEqual(&a, &b) {
		t.Fatal("NotEqual should be false for the same reference")
	}
}

func TestEqual_BothEmpty(t *testing.T) {
	var a Ptr[plain]
	var b Ptr[disposeCounter]

	if !Equal(&a, &b) {
		t.Fatal("Two empty handles should compare equal")
	}
	if Less(&a, &b) || Greater(&a, &b) {
		t.Fatal("Empty handles should not order before or after each other")
	}
	if !LessEqual(&a, &b) || !GreaterEqual(&a, &b) {
		t.Fatal("Empty handles should satisfy the inclusive orderings")
	}
}

func TestOrdering_Antisymmetric(t *testing.T) {
	a := Adopt(&plain{})
	b := Adopt(&plain{})
	defer a.Close()
	defer b.Close()

	if Equal(&a, &b) {
		t.Fatal("Distinct resources should not compare equal")
	}
	if Less(&a, &b) == Less(&b, &a) {
		t.Fatal("Exactly one of the two strict orderings should hold")
	}
	if Less(&a, &b) {
		if !LessEqual(&a, &b) || !Greater(&b, &a) || !GreaterEqual(&b, &a) {
			t.Fatal("Derived orderings disagree with Less")
		}
	}
}

func TestComparison_CrossType(t *testing.T) {
	a := Adopt(&plain{})
	b := Adopt(&disposeCounter{})
	defer a.Close()
	defer b.Close()

	if Equal(&a, &b) {
		t.Fatal("Handles of different types over distinct resources should not be equal")
	}
	if !NotEqual(&a, &b) {
		t.Fatal("NotEqual should hold for distinct resources")
	}
}

func TestComparison_NeverInspectsValues(t *testing.T) {
	a := Adopt(&plain{n: 1})
	b := Adopt(&plain{n: 1})
	defer a.Close()
	defer b.Close()

	// identical contents, distinct references
	if Equal(&a, &b) {
		t.Fatal("Equal must compare identity, not contents")
	}
}

func TestComparison_EmptyVersusOwning(t *testing.T) {
	var empty Ptr[plain]
	full := Adopt(&plain{})
	defer full.Close()

	if Equal(&empty, &full) {
		t.Fatal("Empty handle should not equal an owning handle")
	}
	if !Less(&empty, &full) {
		t.Fatal("Empty handle should order before an owning handle")
	}
}
