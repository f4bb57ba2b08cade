// Package themefile reads and writes theme definitions stored as YAML, JSON
// or TOML. The format is chosen from the file extension.
package themefile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/ports"
	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

// ErrUnsupportedFormat is returned for extensions other than .yaml, .yml, .json and .toml.
var ErrUnsupportedFormat = errors.New("unsupported theme file extension")

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Extensions lists the accepted theme file extensions.
func Extensions() []string {
	return []string{".yaml", ".yml", ".json", ".toml"}
}

// Loader reads theme definitions through the filesystem port.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLoader constructs a Loader. The logger may be nil.
func NewLoader(fs ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fs, logger: logger}
}

// Load decodes and validates the theme file at path.
func (l *Loader) Load(ctx context.Context, path string) (theme.Config, error) {
	if err := ctx.Err(); err != nil {
		return theme.Config{}, err
	}

	l.logDebug(ctx, "loading theme definition", map[string]interface{}{"path": path})

	data, err := l.fs.ReadFile(path)
	if err != nil {
		l.logError(ctx, "failed to read theme definition", err, map[string]interface{}{"path": path})
		return theme.Config{}, xerrors.NewIOError("read", path, err)
	}

	cfg, err := Decode(path, data)
	if err != nil {
		l.logError(ctx, "failed to parse theme definition", err, map[string]interface{}{"path": path})
		return theme.Config{}, err
	}

	if err := theme.Validate(cfg); err != nil {
		l.logError(ctx, "theme definition failed validation", err, map[string]interface{}{"path": path})
		return theme.Config{}, err
	}

	l.logInfo(ctx, "theme definition loaded", map[string]interface{}{"path": path, "theme": cfg.Name})
	return cfg, nil
}

// Save encodes cfg in the format implied by path and writes it.
func (l *Loader) Save(ctx context.Context, path string, cfg theme.Config) error {
	data, err := Encode(path, cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := l.fs.MkdirAll(dir); err != nil {
			return xerrors.NewIOError("mkdir", dir, err)
		}
	}
	if err := l.fs.WriteFile(path, data); err != nil {
		l.logError(ctx, "failed to write theme definition", err, map[string]interface{}{"path": path})
		return xerrors.NewIOError("write", path, err)
	}
	l.logInfo(ctx, "theme definition written", map[string]interface{}{"path": path, "theme": cfg.Name})
	return nil
}

// Decode parses data according to the extension of path. Unknown keys are rejected.
func Decode(path string, data []byte) (theme.Config, error) {
	var cfg theme.Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return theme.Config{}, xerrors.NewParseError(path, yamlLine(err), err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return theme.Config{}, xerrors.NewParseError(path, jsonLine(data, err), err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return theme.Config{}, xerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return theme.Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return cfg, nil
}

// Encode renders cfg in the format implied by the extension of path.
func Encode(path string, cfg theme.Config) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode theme yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode theme yaml: %w", err)
		}
		return buf.Bytes(), nil
	case ".json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode theme json: %w", err)
		}
		return append(data, '\n'), nil
	case ".toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode theme toml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func jsonLine(data []byte, err error) int {
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

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		row, _ := strictErr.Errors[0].Position()
		return row
	}
	return 0
}

func (l *Loader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *Loader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *Loader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
