package database

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thenoetrevino/cardi/internal/models"
	"gopkg.in/yaml.v3"
)

// Record formats supported by the file store
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Codec encodes a project to and from the bytes of one record file
type Codec interface {
	Extension() string
	Marshal(p *models.Project) ([]byte, error)
	Unmarshal(data []byte, p *models.Project) error
}

// CodecFor returns the codec for a format name
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return jsonCodec{}, nil
	case FormatYAML, "yml":
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown record format %q (must be: json, yaml)", format)
	}
}

type jsonCodec struct{}

func (jsonCodec) Extension() string { return ".json" }

func (jsonCodec) Marshal(p *models.Project) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, p *models.Project) error {
	return json.Unmarshal(data, p)
}

type yamlCodec struct{}

func (yamlCodec) Extension() string { return ".yaml" }

func (yamlCodec) Marshal(p *models.Project) ([]byte, error) {
	return yaml.Marshal(p)
}

func (yamlCodec) Unmarshal(data []byte, p *models.Project) error {
	return yaml.Unmarshal(data, p)
}
