package color

import "testing"

func TestNewColor(t *testing.T) {
	testColor := NewColor("\033[31m")
	result := testColor("ERROR")
	expected := "\033[31mERROR\033[0m"

	if result != expected {
		t.Errorf("NewColor() = %q, want %q", result, expected)
	}
}

func TestPalettes(t *testing.T) {
	if got := None.Code("0101"); got != "0101" {
		t.Errorf("None.Code() = %q, want %q", got, "0101")
	}
	if got := ANSI.Code("0101"); got != "\033[32m0101\033[0m" {
		t.Errorf("ANSI.Code() = %q", got)
	}
}
