package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()
	cases := []struct {
		in   any
		want string
	}{
		{oid, oid.Hex()},
		{"abc", "abc"},
		{int32(42), "42"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := idString(tc.in); got != tc.want {
			t.Fatalf("idString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRawOrNil(t *testing.T) {
	if got := rawOrNil(""); got != nil {
		t.Fatalf("expected nil for empty string, got %s", got)
	}
	if got := string(rawOrNil(`{"a":1}`)); got != `{"a":1}` {
		t.Fatalf("unexpected raw message %s", got)
	}
}
