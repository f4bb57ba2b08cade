package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/xala-technologies/xala-cli/internal/infrastructure/logging"
	"github.com/xala-technologies/xala-cli/internal/ports"
	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

// ErrKeyNotFound is returned by Get for a dotted path that does not resolve.
var ErrKeyNotFound = errors.New("config key not found")

// Store owns the project configuration for one invocation. The decoded JSON
// document is what gets saved, so keys outside ProjectConfig survive loads,
// migrations and updates. ProjectConfig is decoded from it for reading and
// validation. A Store is not safe for concurrent use and writes are not atomic.
type Store struct {
	fs          ports.FileSystem
	path        string
	logger      ports.Logger
	defaultName string
	doc         map[string]any
	cfg         *ProjectConfig
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithDefaultName sets the project name used when a default config is synthesised.
func WithDefaultName(name string) StoreOption {
	return func(s *Store) {
		s.defaultName = name
	}
}

// NewStore constructs a Store for the config file at path. A nil logger discards output.
func NewStore(fs ports.FileSystem, path string, logger ports.Logger, opts ...StoreOption) *Store {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	if path == "" {
		path = FileName
	}
	s := &Store{
		fs:          fs,
		path:        path,
		logger:      logger.With("component", "config_store"),
		defaultName: "xala-project",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file, migrating ui.version when it lags behind
// CurrentUIVersion. A missing file is replaced by Default. Both the migration
// and the default are persisted immediately.
func (s *Store) Load(ctx context.Context) (ProjectConfig, error) {
	return s.load(ctx, true)
}

// Read is Load without persisting: a missing file yields Default and a stale
// ui.version is migrated in memory only. The next Save or Update writes both.
func (s *Store) Read(ctx context.Context) (ProjectConfig, error) {
	if s.cfg != nil {
		return s.cfg.Clone(), nil
	}
	return s.load(ctx, false)
}

func (s *Store) load(ctx context.Context, persist bool) (ProjectConfig, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return ProjectConfig{}, xerrors.NewIOError("stat", s.path, err)
	}

	if !exists {
		cfg := Default(s.defaultName)
		doc, err := toMap(cfg)
		if err != nil {
			return ProjectConfig{}, err
		}
		s.doc, s.cfg = doc, &cfg
		if !persist {
			s.logger.Debug(ctx, "project config missing, using defaults", "path", s.path)
			return cfg.Clone(), nil
		}
		if err := s.Save(ctx); err != nil {
			return ProjectConfig{}, err
		}
		s.logger.Info(ctx, "created default project config", "path", s.path, "name", cfg.Name)
		return cfg.Clone(), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return ProjectConfig{}, xerrors.NewIOError("read", s.path, err)
	}

	var doc map[string]any
	var cfg ProjectConfig
	err = json.Unmarshal(data, &doc)
	if err == nil {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		s.logger.Error(ctx, "project config is not valid JSON", "path", s.path, "error", err)
		return ProjectConfig{}, xerrors.NewParseError(s.path, jsonErrorLine(data, err), err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	s.doc, s.cfg = doc, &cfg
	s.logger.Debug(ctx, "project config loaded", "path", s.path)

	if cfg.UI.Version != CurrentUIVersion {
		from := cfg.UI.Version
		s.cfg.UI.Version = CurrentUIVersion
		setIn(s.doc, []string{"ui", "version"}, CurrentUIVersion)
		if persist {
			if err := s.Save(ctx); err != nil {
				return ProjectConfig{}, err
			}
			s.logger.Info(ctx, "migrated project config", "path", s.path, "from", from, "to", CurrentUIVersion)
		}
	}

	return s.cfg.Clone(), nil
}

// Config returns a copy of the in-memory config, loading it first if needed.
func (s *Store) Config(ctx context.Context) (ProjectConfig, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return ProjectConfig{}, err
	}
	return s.cfg.Clone(), nil
}

// Save overwrites the config file with the pretty-printed in-memory document.
func (s *Store) Save(ctx context.Context) error {
	if s.doc == nil {
		return errors.New("config store: nothing loaded to save")
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project config: %w", err)
	}
	data = append(data, '\n')

	if err := s.fs.WriteFile(s.path, data); err != nil {
		s.logger.Error(ctx, "write project config failed", "path", s.path, "error", err)
		return xerrors.NewIOError("write", s.path, err)
	}
	s.logger.Debug(ctx, "project config saved", "path", s.path, "bytes", len(data))
	return nil
}

// Update deep-merges partial into the config and saves it. Nested objects
// merge key by key; arrays and scalars replace. Keys unknown to ProjectConfig
// are kept. A value whose type does not fit its ProjectConfig field fails the
// update and leaves the config untouched. No validation is applied.
func (s *Store) Update(ctx context.Context, partial map[string]any) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	doc, cfg, err := mergeDocument(s.doc, partial)
	if err != nil {
		return err
	}
	s.doc, s.cfg = doc, &cfg
	return s.Save(ctx)
}

// Validate checks the in-memory config.
func (s *Store) Validate(ctx context.Context) (ValidationResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return ValidationResult{}, err
	}
	result := Validate(*s.cfg)
	if !result.Valid {
		s.logger.Warn(ctx, "project config has violations", "count", len(result.Errors))
	}
	return result, nil
}

// IsIntegrationEnabled reports whether the named integration is switched on.
// Unknown names and an unloaded store report false.
func (s *Store) IsIntegrationEnabled(name string) bool {
	if s.cfg == nil {
		return false
	}
	return s.cfg.Integrations[name].Enabled
}

// Get resolves a dotted path such as "ui.theme" against the config document,
// including keys ProjectConfig does not declare.
func (s *Store) Get(ctx context.Context, path string) (any, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	var current any = s.doc
	for _, key := range splitPath(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
		}
	}
	return cloneAny(current), nil
}

// Set assigns raw to a dotted path. raw is decoded as a YAML scalar, so
// "true", "3000" and "[css, tokens]" become typed values; when the typed value
// does not fit the field the raw string is used instead.
func (s *Store) Set(ctx context.Context, path, raw string) error {
	keys := splitPath(path)
	if len(keys) == 0 {
		return xerrors.NewValidationError("key", "must not be empty", nil)
	}

	value := decodeScalar(raw)
	err := s.Update(ctx, nest(keys, value))
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if _, isString := value.(string); !isString {
			err = s.Update(ctx, nest(keys, raw))
		}
	}
	if errors.As(err, &typeErr) {
		return xerrors.NewValidationError(path, fmt.Sprintf("cannot assign %q: %v", raw, typeErr), err)
	}
	return err
}

// Merge deep-merges partial into base and returns the result; base is not modified.
func Merge(base ProjectConfig, partial map[string]any) (ProjectConfig, error) {
	doc, err := toMap(base)
	if err != nil {
		return ProjectConfig{}, err
	}
	_, merged, err := mergeDocument(doc, partial)
	return merged, err
}

// mergeDocument merges partial into a deep copy of doc and decodes the result.
func mergeDocument(doc, partial map[string]any) (map[string]any, ProjectConfig, error) {
	src, err := normalize(partial)
	if err != nil {
		return nil, ProjectConfig{}, err
	}
	dst, _ := cloneAny(doc).(map[string]any)
	if dst == nil {
		dst = map[string]any{}
	}

	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return nil, ProjectConfig{}, fmt.Errorf("merge project config: %w", err)
	}

	data, err := json.Marshal(dst)
	if err != nil {
		return nil, ProjectConfig{}, fmt.Errorf("encode merged config: %w", err)
	}
	var merged ProjectConfig
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, ProjectConfig{}, fmt.Errorf("apply update: %w", err)
	}
	return dst, merged, nil
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.cfg != nil {
		return nil
	}
	_, err := s.Load(ctx)
	return err
}

func toMap(cfg ProjectConfig) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode project config: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode project config: %w", err)
	}
	return out, nil
}

func normalize(partial map[string]any) (map[string]any, error) {
	if partial == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(partial)
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode update: %w", err)
	}
	return out, nil
}

func splitPath(path string) []string {
	var keys []string
	for _, key := range strings.Split(path, ".") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func nest(keys []string, value any) map[string]any {
	out := map[string]any{keys[len(keys)-1]: value}
	for i := len(keys) - 2; i >= 0; i-- {
		out = map[string]any{keys[i]: out}
	}
	return out
}

func setIn(doc map[string]any, keys []string, value any) {
	for _, key := range keys[:len(keys)-1] {
		next, ok := doc[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			doc[key] = next
		}
		doc = next
	}
	doc[keys[len(keys)-1]] = value
}

func decodeScalar(raw string) any {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
		return raw
	}
	return value
}

func jsonErrorLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
