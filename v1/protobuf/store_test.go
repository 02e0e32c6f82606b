package protobuf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const shopProto = `syntax = "proto3";

package shop;

message Point {
  int32 x = 1;
  int32 y = 2;
}

message Order {
  enum Status {
    PENDING = 0;
    SHIPPED = 1;
  }

  message Line {
    string sku = 1;
    int32 quantity = 2;
  }

  string id = 1;
  Status status = 2;
  Point origin = 3;
  repeated int32 counts = 4;
  bytes blob = 5;
  sint32 delta = 6;
  double total = 7;
  bool active = 8;
  fixed32 checksum = 9;
  repeated string tags = 10;
  float ratio = 11;
  uint64 big = 12;
  sfixed64 position = 13;
}
`

// newTestStore writes the shop schema into a temp directory and builds a
// descriptor store over it.
func newTestStore(t *testing.T) *DescriptorStore {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "shop.proto"), []byte(shopProto), 0o600); err != nil {
		t.Fatalf("write proto file: %v", err)
	}

	store, err := NewDescriptorStore(Config{ProtoDir: dir}, zap.NewNop())
	if err != nil {
		t.Fatalf("build descriptor store: %v", err)
	}
	return store
}

func TestNewDescriptorStoreRequiresDir(t *testing.T) {
	_, err := NewDescriptorStore(Config{}, nil)
	if !errors.Is(err, ErrMissingProtoDir) {
		t.Fatalf("expected ErrMissingProtoDir, got %v", err)
	}
}

func TestNewDescriptorStoreEmptyDir(t *testing.T) {
	_, err := NewDescriptorStore(Config{ProtoDir: t.TempDir()}, nil)
	if !errors.Is(err, ErrNoProtoFiles) {
		t.Fatalf("expected ErrNoProtoFiles, got %v", err)
	}
}

func TestNewDescriptorStoreParseFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.proto"), []byte("message {"), 0o600); err != nil {
		t.Fatalf("write proto file: %v", err)
	}

	if _, err := NewDescriptorStore(Config{ProtoDir: dir}, nil); err == nil {
		t.Fatal("expected construction to fail on an unparseable schema file")
	}
}

func TestNewDescriptorStoreWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "shop", "v1")
	if err := os.MkdirAll(nested, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "shop.proto"), []byte(shopProto), 0o600); err != nil {
		t.Fatalf("write proto file: %v", err)
	}

	store, err := NewDescriptorStore(Config{ProtoDir: dir}, nil)
	if err != nil {
		t.Fatalf("build descriptor store: %v", err)
	}
	if _, err := store.Message("shop.Order"); err != nil {
		t.Fatalf("expected shop.Order to be indexed, got %v", err)
	}
}

func TestMessageResolvesNestedTypes(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"shop.Point", "shop.Order", "shop.Order.Line"} {
		if _, err := store.Message(name); err != nil {
			t.Fatalf("expected %s to resolve, got %v", name, err)
		}
	}

	// A leading dot is tolerated; fully qualified names are sometimes
	// written that way in configuration.
	if _, err := store.Message(".shop.Point"); err != nil {
		t.Fatalf("expected .shop.Point to resolve, got %v", err)
	}
}

func TestMessageNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Message("shop.Missing")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestMessageTypesListsAll(t *testing.T) {
	store := newTestStore(t)

	names := store.MessageTypes()
	if len(names) != 3 {
		t.Fatalf("expected 3 message types, got %d: %v", len(names), names)
	}
}
