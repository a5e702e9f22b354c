package database

import (
	"context"
	"testing"
)

func TestNullableText(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Fatalf("Text(nil) = %q", got)
	}
	if got := NullText(""); got != nil {
		t.Fatalf("NullText(\"\") = %v, want nil", *got)
	}
	if got := Text(NullText("fern")); got != "fern" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestConnectRequiresURL(t *testing.T) {
	if _, err := Connect(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty database url")
	}
}
