package bignum

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestTextMarshal(t *testing.T) {
	v := MustParse("-120")
	text, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "-120" {
		t.Fatalf("MarshalText = %q", text)
	}

	var back Int
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if !back.Equal(v) {
		t.Fatalf("text roundtrip: got %s", back)
	}

	if err := back.UnmarshalText([]byte("+")); err == nil {
		t.Fatal("UnmarshalText accepted a lone sign")
	}
}

func TestAppendText(t *testing.T) {
	got, err := MustParse("-42").AppendText([]byte("n = "))
	if err != nil {
		t.Fatalf("AppendText: %v", err)
	}
	if string(got) != "n = -42" {
		t.Fatalf("AppendText = %q", got)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "999", "-120", "123456789012345678901234567890"} {
		v := MustParse(s)
		raw, err := msgpack.Marshal(&v)
		if err != nil {
			t.Fatalf("msgpack marshal %s: %v", s, err)
		}
		var back Int
		if err := msgpack.Unmarshal(raw, &back); err != nil {
			t.Fatalf("msgpack unmarshal %s: %v", s, err)
		}
		if !back.Equal(v) {
			t.Fatalf("msgpack roundtrip of %s: got %s", s, back)
		}
	}
}

func TestHashConsistentWithEquality(t *testing.T) {
	if MustParse("+007").Hash() != MustParse("7").Hash() {
		t.Fatal("equal values must hash identically")
	}
	if MustParse("-0").Hash() != Zero().Hash() {
		t.Fatal("-0 must hash like 0")
	}
	if MustParse("7").Hash() == MustParse("-7").Hash() {
		t.Fatal("sign must participate in the hash")
	}
	if MustParse("12").Hash() == MustParse("21").Hash() {
		t.Fatal("digit order must participate in the hash")
	}
}
