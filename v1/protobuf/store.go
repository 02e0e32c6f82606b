package protobuf

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"go.uber.org/zap"
)

// Config holds configuration for the descriptor store.
type Config struct {
	// ProtoDir is the root of the directory tree that is walked for .proto
	// files at startup. It is also the import root for the parser, so files
	// may import each other by their path relative to this directory.
	ProtoDir string
}

// DescriptorStore is an immutable index of the message descriptors defined
// by the schema files under a directory tree. It is built once, before any
// decoding happens, and is safe for unguarded concurrent use afterward.
type DescriptorStore struct {
	messages map[string]*desc.MessageDescriptor
	logger   *zap.Logger
}

// NewDescriptorStore walks cfg.ProtoDir for .proto files, parses all of
// them, and indexes every message type (including nested ones) by fully
// qualified name. Any unreadable or unparseable file fails construction;
// a broken schema directory is persistent misconfiguration, not something
// to limp past.
func NewDescriptorStore(cfg Config, logger *zap.Logger) (*DescriptorStore, error) {
	if cfg.ProtoDir == "" {
		return nil, ErrMissingProtoDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var files []string
	err := filepath.WalkDir(cfg.ProtoDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".proto") {
			return nil
		}
		rel, err := filepath.Rel(cfg.ProtoDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk proto directory %s: %w", cfg.ProtoDir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoProtoFiles, cfg.ProtoDir)
	}

	parser := protoparse.Parser{ImportPaths: []string{cfg.ProtoDir}}
	descriptors, err := parser.ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse proto files under %s: %w", cfg.ProtoDir, err)
	}

	store := &DescriptorStore{
		messages: make(map[string]*desc.MessageDescriptor),
		logger:   logger,
	}
	for _, fd := range descriptors {
		for _, md := range fd.GetMessageTypes() {
			store.index(md)
		}
	}

	logger.Info("descriptor store built",
		zap.Int("files", len(files)),
		zap.Int("messages", len(store.messages)))

	return store, nil
}

func (s *DescriptorStore) index(md *desc.MessageDescriptor) {
	s.messages[md.GetFullyQualifiedName()] = md
	for _, nested := range md.GetNestedMessageTypes() {
		s.index(nested)
	}
}

// Message resolves a message descriptor by fully qualified name.
func (s *DescriptorStore) Message(name string) (*desc.MessageDescriptor, error) {
	md, ok := s.messages[strings.TrimPrefix(name, ".")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMessageNotFound, name)
	}
	return md, nil
}

// MessageTypes returns the fully qualified names of all indexed messages,
// for configuration error messages and the settings UI.
func (s *DescriptorStore) MessageTypes() []string {
	names := make([]string, 0, len(s.messages))
	for name := range s.messages {
		names = append(names, name)
	}
	return names
}
