// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package sparse

import "testing"

func TestInsertAtGet(t *testing.T) {
	var a Array[string]

	a.InsertAt(5, "five")
	a.InsertAt(1, "one")
	a.InsertAt(9, "nine")

	cases := []struct {
		idx  uint
		want string
		ok   bool
	}{
		{1, "one", true},
		{5, "five", true},
		{9, "nine", true},
		{0, "", false},
		{100, "", false},
	}
	for _, c := range cases {
		got, ok := a.Get(c.idx)
		if ok != c.ok || got != c.want {
			t.Errorf("Get(%d) = (%q, %v), want (%q, %v)", c.idx, got, ok, c.want, c.ok)
		}
	}

	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
}

func TestInsertAtOverwrite(t *testing.T) {
	var a Array[int]
	a.InsertAt(3, 1)
	if exists := a.InsertAt(3, 2); !exists {
		t.Error("InsertAt on existing index reported exists=false")
	}
	got, _ := a.Get(3)
	if got != 2 {
		t.Errorf("Get(3) = %d, want 2 after overwrite", got)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestInsertAtOrderPreserved(t *testing.T) {
	var a Array[int]
	for _, i := range []uint{10, 2, 7, 0} {
		a.InsertAt(i, int(i))
	}
	want := []int{0, 2, 7, 10}
	for i, w := range want {
		if a.Items[i] != w {
			t.Errorf("Items[%d] = %d, want %d (insertion order not rank-sorted)", i, a.Items[i], w)
		}
	}
}

func TestMustGet(t *testing.T) {
	var a Array[int]
	a.InsertAt(4, 42)
	if got := a.MustGet(4); got != 42 {
		t.Errorf("MustGet(4) = %d, want 42", got)
	}
}

func TestTest(t *testing.T) {
	var a Array[int]
	a.InsertAt(2, 1)
	if !a.Test(2) {
		t.Error("Test(2) = false, want true")
	}
	if a.Test(3) {
		t.Error("Test(3) = true, want false")
	}
}
