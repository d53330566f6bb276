//go:build !arm && !dccnop

package panicdcc

import (
	"bytes"
	"testing"

	dcc "github.com/japaric/arm-dcc"
)

// capture collects everything rendered through the channel as bytes.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	dcc.Sink = func(w uint32) { buf.WriteByte(byte(w)) }
	t.Cleanup(func() { dcc.Sink = nil })
	return buf
}

func TestRenderWithLocation(t *testing.T) {
	buf := capture(t)

	render("Oops", &Location{File: "src/hello.rs", Line: 4, Col: 4})

	expected := "panicked at 'Oops', src/hello.rs:4:4\n"
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestRenderWithoutLocation(t *testing.T) {
	buf := capture(t)

	render("Oops", nil)

	expected := "panicked at 'Oops'\n"
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestRenderNonStringPayload(t *testing.T) {
	for _, v := range []any{42, struct{ x int }{1}, []byte("Oops"), nil} {
		buf := capture(t)

		render(v, nil)

		expected := "panicked at 'dyn Any'\n"
		if buf.String() != expected {
			t.Errorf("payload %#v: got %q, expected %q", v, buf.String(), expected)
		}
	}
}

func TestRenderNonStringPayloadWithLocation(t *testing.T) {
	buf := capture(t)

	render(42, &Location{File: "main.go", Line: 10, Col: 1})

	expected := "panicked at 'dyn Any', main.go:10:1\n"
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestRenderEmptyPayload(t *testing.T) {
	buf := capture(t)

	render("", nil)

	expected := "panicked at ''\n"
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestUtoa(t *testing.T) {
	var buf [10]byte
	for _, tc := range []struct {
		v        uint32
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{429, "429"},
		{4294967295, "4294967295"},
	} {
		if got := string(utoa(buf[:], tc.v)); got != tc.expected {
			t.Errorf("utoa(%d) = %q, expected %q", tc.v, got, tc.expected)
		}
	}
}
