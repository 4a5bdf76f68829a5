package sdrf

import "testing"

func TestParseValue(t *testing.T) {
	for _, v := range []struct {
		raw  string
		kind Kind
	}{
		{"", Empty},
		{"42", Number},
		{"3.14", Number},
		{"-1e6", Number},
		{"homo sapiens", String},
		{"TMT126", String},
		{"12 weeks", String},
	} {
		got := ParseValue(v.raw)
		if got.Kind() != v.kind {
			t.Errorf("ParseValue(%q).Kind() = %v, want %v", v.raw, got.Kind(), v.kind)
		}
		if got.String() != v.raw {
			t.Errorf("ParseValue(%q).String() = %q, want the raw text back", v.raw, got.String())
		}
	}
}

func TestValueNumber(t *testing.T) {
	if n, ok := ParseValue("3.5").Number(); !ok || n != 3.5 {
		t.Errorf("Number() = %v, %v; want 3.5, true", n, ok)
	}
	if _, ok := ParseValue("abc").Number(); ok {
		t.Error("Number() on a string value should not be ok")
	}
}

func TestValueEmptyIsDistinct(t *testing.T) {
	if !ParseValue("").IsEmpty() {
		t.Error("empty cell should be an explicit empty value")
	}
	if ParseValue("0").IsEmpty() {
		t.Error("a zero cell is not an empty value")
	}
}
