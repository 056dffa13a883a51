package source

import (
	"context"
	"fmt"
	"io"

	"github.com/lugondev/solcodec/internal/common"
	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/log"
)

// LogSource emits the Program data payloads of one transaction's logs as
// event payloads. With a program set only payloads logged inside that
// program's frames are kept; otherwise every frame whose program is
// registered contributes.
type LogSource struct {
	common.LoggerMixin

	payloads []Payload
	pos      int
}

// NewLogSource frames logs. origin prefixes each payload's Origin, usually
// the transaction signature. start is the Index of the first payload.
func NewLogSource(reg *decoder.Registry, program string, logs []string, origin string, start int) (*LogSource, error) {
	var target *decoder.Program
	if program != "" {
		p, err := reg.Resolve(program)
		if err != nil {
			return nil, apperrors.FromRegistry(err)
		}
		target = p
	}

	s := &LogSource{LoggerMixin: common.NewLoggerMixin()}
	index := start
	for _, pd := range log.NewParser().ProgramData(logs) {
		var name string
		if target != nil {
			if pd.ProgramID != target.ID.String() {
				continue
			}
			name = target.Name
		} else {
			p, err := reg.Resolve(pd.ProgramID)
			if err != nil {
				continue
			}
			name = p.Name
		}

		payload := Payload{
			Index:     index,
			Program:   name,
			Namespace: decoder.Events,
			Data:      pd.Data,
			Origin:    fmt.Sprintf("%s ix %s log %d", origin, pd.Path, pd.Line),
		}
		if pd.Err != nil {
			payload.Err = apperrors.InvalidInput("program data on "+payload.Origin, pd.Err)
		}
		s.payloads = append(s.payloads, payload)
		index++
	}
	return s, nil
}

// Len returns the number of framed payloads.
func (s *LogSource) Len() int {
	return len(s.payloads)
}

// Next implements Source.
func (s *LogSource) Next(ctx context.Context) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}
	if s.pos >= len(s.payloads) {
		return Payload{}, io.EOF
	}
	p := s.payloads[s.pos]
	s.pos++
	return p, nil
}
