package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// RecordModel is one decoded record, or one payload that failed to decode,
// as written to a sink.
type RecordModel struct {
	ID            string          `json:"id" bson:"_id,omitempty" db:"id"`
	Index         int             `json:"index" bson:"index" db:"payload_index"`
	Program       string          `json:"program" bson:"program" db:"program"`
	Namespace     string          `json:"namespace" bson:"namespace" db:"namespace"`
	Shape         string          `json:"shape,omitempty" bson:"shape,omitempty" db:"shape"`
	Discriminator string          `json:"discriminator,omitempty" bson:"discriminator,omitempty" db:"discriminator"`
	Origin        string          `json:"origin,omitempty" bson:"origin,omitempty" db:"origin"`
	Data          json.RawMessage `json:"data,omitempty" bson:"-" db:"data"`
	Error         string          `json:"error,omitempty" bson:"error,omitempty" db:"error"`
	DecodedAt     time.Time       `json:"decoded_at" bson:"decoded_at" db:"decoded_at"`
}

// Failed reports whether the model records a failure.
func (m *RecordModel) Failed() bool {
	return m.Error != ""
}

// RecordToModel converts a decoded record. The record value is rendered
// through its JSON field names.
func RecordToModel(rec *decoder.Record, index int, origin string) (*RecordModel, error) {
	data, err := json.Marshal(rec.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", rec.Shape, err)
	}
	return &RecordModel{
		ID:            uuid.NewString(),
		Index:         index,
		Program:       rec.Program,
		Namespace:     string(rec.Namespace),
		Shape:         rec.Shape,
		Discriminator: rec.Discriminator.String(),
		Origin:        origin,
		Data:          data,
		DecodedAt:     time.Now().UTC(),
	}, nil
}

// FailureToModel records a payload that could not be framed or decoded.
// The shape and tag are taken from a DecodeError when there is one.
func FailureToModel(program string, ns decoder.Namespace, index int, origin string, cause error) *RecordModel {
	m := &RecordModel{
		ID:        uuid.NewString(),
		Index:     index,
		Program:   program,
		Namespace: string(ns),
		Origin:    origin,
		Error:     cause.Error(),
		DecodedAt: time.Now().UTC(),
	}
	var de *borsh.DecodeError
	if errors.As(cause, &de) {
		m.Shape = de.Shape
		if len(de.Tag) == decoder.DiscriminatorSize {
			m.Discriminator = decoder.NewDiscriminator(de.Tag).String()
		}
	}
	return m
}

type yamlRecord struct {
	ID            string     `yaml:"id"`
	Index         int        `yaml:"index"`
	Program       string     `yaml:"program"`
	Namespace     string     `yaml:"namespace"`
	Shape         string     `yaml:"shape,omitempty"`
	Discriminator string     `yaml:"discriminator,omitempty"`
	Origin        string     `yaml:"origin,omitempty"`
	Data          *yaml.Node `yaml:"data,omitempty"`
	Error         string     `yaml:"error,omitempty"`
	DecodedAt     time.Time  `yaml:"decoded_at"`
}

// MarshalYAML renders Data as a block mapping in JSON field order.
func (m *RecordModel) MarshalYAML() (any, error) {
	out := yamlRecord{
		ID:            m.ID,
		Index:         m.Index,
		Program:       m.Program,
		Namespace:     m.Namespace,
		Shape:         m.Shape,
		Discriminator: m.Discriminator,
		Origin:        m.Origin,
		Error:         m.Error,
		DecodedAt:     m.DecodedAt,
	}
	if len(m.Data) > 0 {
		node, err := jsonToYAMLNode(m.Data)
		if err != nil {
			return nil, err
		}
		out.Data = node
	}
	return out, nil
}

// jsonToYAMLNode parses JSON, which YAML accepts as flow style, and switches
// collections to block style. Mapping keys are field names and lose their
// quotes; string values keep theirs.
func jsonToYAMLNode(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to convert record data: %w", err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	blockStyle(node)
	return node, nil
}

func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = 0
	}
	for i, c := range n.Content {
		if n.Kind == yaml.MappingNode && i%2 == 0 {
			c.Style = 0
		}
		blockStyle(c)
	}
}
