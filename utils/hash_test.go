package utils

import (
	"testing"
)

func TestHashString(t *testing.T) {
	if HashString("entry") != HashString("entry") {
		t.Errorf("hashing must be stable")
	}
	if HashString("entry") == HashString("exit") {
		t.Errorf("distinct strings should not collide here")
	}
}

func TestHashCombine(t *testing.T) {
	a := HashCombine(1, 2, 3)
	if a != HashCombine(1, 2, 3) {
		t.Errorf("combination must be stable")
	}
	if a == HashCombine(3, 2, 1) {
		t.Errorf("combination must be order sensitive")
	}
	if HashCombine() != 0 {
		t.Errorf("empty combination must be the zero seed")
	}
}
