package codegen

import "testing"

func TestIndenter(t *testing.T) {
	type test struct {
		unit   string
		level  int
		output string
	}

	testCases := []test{
		{"    ", 0, ""},
		{"    ", 1, "    "},
		{"    ", 2, "        "},
		{"\t", 3, "\t\t\t"},
		{"  ", -1, ""},
		{"", 5, ""},
	}

	for _, tc := range testCases {
		got := Indenter{Unit: tc.unit}.Indent(tc.level)
		if got != tc.output {
			t.Errorf("Indent(%d) with unit %q: got %q, wanted %q", tc.level, tc.unit, got, tc.output)
		}
	}

	if got := DefaultIndenter.Indent(1); got != DefaultIndentUnit {
		t.Errorf("got %q, wanted %q", got, DefaultIndentUnit)
	}
}
