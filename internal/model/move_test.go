package model

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		uci  string
		want Move
	}{
		{"a1a2", Move{From: A1, To: A2}},
		{"c2b3", Move{From: C2, To: B3}},
	}
	for _, c := range cases {
		got, err := ParseMove(c.uci)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", c.uci, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.uci, got, c.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, uci := range []string{"a3a4", "c2d3", "a1", "a1a2a3", "", "11aa"} {
		_, err := ParseMove(uci)
		if err == nil {
			t.Errorf("ParseMove(%q) should fail", uci)
			continue
		}
		if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error %v is not ErrInvalidNotation", uci, err)
		}
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: B1, To: B2}
	if m.String() != "b1b2" {
		t.Errorf("Move.String() = %q", m.String())
	}
}

func TestWSMoveDecode(t *testing.T) {
	m, err := WSMove{From: "b2", To: "a3"}.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m != (Move{From: B2, To: A3}) {
		t.Errorf("decoded %v", m)
	}

	if _, err := (WSMove{From: "b2", To: "d3"}).Decode(); err == nil {
		t.Error("decoding square off the board should fail")
	}
}
