package object

import "testing"

func TestStrNormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent (U+0065 U+0301) vs precomposed "é" (U+00E9).
	decomposed := "é"
	precomposed := "é"

	s := NewStr(decomposed)
	if s.Value != precomposed {
		t.Errorf("NewStr did not normalize to NFC: got %q, want %q", s.Value, precomposed)
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{0, "0"},
		{-2, "-2"},
	}
	for _, c := range cases {
		n := &Number{Value: c.value}
		if got := n.String(); got != c.want {
			t.Errorf("Number{%v}.String() = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestBoolString(t *testing.T) {
	if (&Bool{Value: true}).String() != "true" {
		t.Error("Bool{true}.String() != \"true\"")
	}
	if (&Bool{Value: false}).String() != "false" {
		t.Error("Bool{false}.String() != \"false\"")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		obj  Object
		want bool
	}{
		{&Bool{Value: false}, false},
		{&Bool{Value: true}, true},
		{Nil{}, false},
		{&Number{Value: 0}, true},
		{NewStr(""), true},
	}
	for _, c := range cases {
		if got := Truthy(c.obj); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.obj, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(&Number{Value: 1}, &Number{Value: 1}) {
		t.Error("1 == 1 should be true")
	}
	if Equal(&Number{Value: 1}, &Number{Value: 2}) {
		t.Error("1 == 2 should be false")
	}
	if !Equal(NewStr("a"), NewStr("a")) {
		t.Error(`"a" == "a" should be true`)
	}
	if Equal(&Number{Value: 1}, NewStr("1")) {
		t.Error("1 == \"1\" should be false: different variants never compare equal")
	}
	if !Equal(Nil{}, Nil{}) {
		t.Error("nil == nil should be true")
	}
	if Equal(Nil{}, &Bool{Value: false}) {
		t.Error("nil == false should be false")
	}
}
