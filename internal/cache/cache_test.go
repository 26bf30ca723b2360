package cache

import (
	"testing"

	"decint/internal/bignum"
)

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}

	operand := bignum.MustParse("20")
	result := bignum.MustParse("2432902008176640000")
	if err := c.Put("factorial", operand, result); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get("factorial", operand)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if !got.Equal(result) {
		t.Fatalf("Get = %s, want %s", got, result)
	}
}

func TestGetMissesForOtherOpAndOperand(t *testing.T) {
	c, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	if err := c.Put("factorial", bignum.MustParse("5"), bignum.MustParse("120")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, ok, err := c.Get("nextprime", bignum.MustParse("5")); err != nil || ok {
		t.Fatalf("different op must miss: ok=%v err=%v", ok, err)
	}
	if _, ok, err := c.Get("factorial", bignum.MustParse("6")); err != nil || ok {
		t.Fatalf("different operand must miss: ok=%v err=%v", ok, err)
	}
}

func TestDropAll(t *testing.T) {
	c, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	if err := c.Put("factorial", bignum.MustParse("5"), bignum.MustParse("120")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, err := c.Get("factorial", bignum.MustParse("5")); err != nil || ok {
		t.Fatalf("entry survived DropAll: ok=%v err=%v", ok, err)
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var c *Cache
	if err := c.Put("factorial", bignum.Zero(), bignum.Zero()); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	if _, ok, err := c.Get("factorial", bignum.Zero()); err != nil || ok {
		t.Fatalf("nil Get: ok=%v err=%v", ok, err)
	}
}

func TestKeyDistinguishesSignAndOp(t *testing.T) {
	if Key("factorial", bignum.MustParse("5")) == Key("factorial", bignum.MustParse("-5")) {
		t.Fatal("sign must participate in the digest")
	}
	if Key("factorial", bignum.MustParse("5")) == Key("nextprime", bignum.MustParse("5")) {
		t.Fatal("operation must participate in the digest")
	}
}
