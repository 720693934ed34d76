package registration

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/validation"
	"github.com/thoreinstein/munconf/pkg/fileutil"
)

// Format is a record file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatYAML, FormatTOML, FormatJSON}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "%s (want .yaml, .yml, .toml or .json)", path)
	}
}

// Decode reads the record file at path.
func Decode(path string) (validation.Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		return nil, err
	}
	rec, err := DecodeBytes(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return rec, nil
}

// DecodeBytes parses a record. Numbers and dates become their text form,
// since form inputs are text; booleans stay booleans. Anything else is kept
// as decoded and fails whichever rule inspects it.
func DecodeBytes(data []byte, format Format) (validation.Record, error) {
	raw := map[string]any{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "parsing YAML")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "parsing JSON")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", format)
	}

	rec := make(validation.Record, len(raw))
	for k, v := range raw {
		rec[k] = normalize(v)
	}
	return rec, nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.DateOnly)
	case toml.LocalDate:
		return x.String()
	case toml.LocalDateTime:
		return x.String()
	case toml.LocalTime:
		return x.String()
	default:
		return v
	}
}

// Template renders an empty registration in format, for filling in by hand.
func Template(format Format) ([]byte, error) {
	var blank Registration
	switch format {
	case FormatYAML:
		return yaml.Marshal(blank)
	case FormatTOML:
		return toml.Marshal(blank)
	case FormatJSON:
		data, err := json.MarshalIndent(blank, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", format)
	}
}
