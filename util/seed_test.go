package util

import "testing"

func TestDeriveSeed(t *testing.T) {
	a := DeriveSeed("winter is coming", "mix")
	b := DeriveSeed("winter is coming", "mix")
	if a != b {
		t.Fatal("same phrase and purpose gave different seeds")
	}

	if DeriveSeed("winter is coming", "carrier") == a {
		t.Fatal("different purposes gave the same seed")
	}
	if DeriveSeed("summer is coming", "mix") == a {
		t.Fatal("different phrases gave the same seed")
	}
}
