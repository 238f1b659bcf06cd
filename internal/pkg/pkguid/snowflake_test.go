package pkguid

import (
	"strconv"
	"testing"
)

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	if err != nil {
		t.Fatalf("generateRandomNodeID: %v", err)
	}
	if id < 0 || id > 1023 {
		t.Fatalf("expected id within 0..1023, got %d", id)
	}
}

func TestSnowflakeGenerateUnique(t *testing.T) {
	gen, err := NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}
	id1 := gen.Generate()
	id2 := gen.Generate()
	if id1 == id2 {
		t.Fatalf("expected unique ids, got %d and %d", id1, id2)
	}
}

func TestSnowflakeStringGenerate(t *testing.T) {
	gen, err := NewSnowflakeString()
	if err != nil {
		t.Fatalf("NewSnowflakeString: %v", err)
	}

	var ids StringID = gen
	id1 := ids.Generate()
	id2 := ids.Generate()
	if id1 == id2 {
		t.Fatalf("expected unique ids, got %s and %s", id1, id2)
	}
	if _, err := strconv.ParseInt(id1, 10, 64); err != nil {
		t.Fatalf("expected decimal id, got %q", id1)
	}
}
