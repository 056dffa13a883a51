package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lugondev/solcodec/internal/common"
	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// maxLineSize bounds one encoded payload line.
const maxLineSize = 4 * 1024 * 1024

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// LineSource reads one encoded payload per line. A line may start with a
// namespace prefix ("accounts:" or "events:") overriding the default.
// Blank lines and lines starting with # are skipped.
type LineSource struct {
	common.LoggerMixin

	scanner   *bufio.Scanner
	encoding  Encoding
	program   string
	namespace decoder.Namespace
	line      int
	index     int
}

func NewLineSource(r io.Reader, enc Encoding, program string, ns decoder.Namespace) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LineSource{
		LoggerMixin: common.NewLoggerMixin(),
		scanner:     scanner,
		encoding:    enc,
		program:     program,
		namespace:   ns,
	}
}

// Next implements Source. Lines that fail to decode yield a Payload with
// Err set rather than an error.
func (s *LineSource) Next(ctx context.Context) (Payload, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Payload{}, err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return Payload{}, apperrors.SourceFailed("line", err)
			}
			return Payload{}, io.EOF
		}
		s.line++

		text := strings.TrimSpace(s.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return s.frame(text), nil
	}
}

func (s *LineSource) frame(text string) Payload {
	p := Payload{
		Index:     s.index,
		Program:   s.program,
		Namespace: s.namespace,
		Origin:    fmt.Sprintf("line %d", s.line),
	}
	s.index++

	if prefix, rest, ok := strings.Cut(text, ":"); ok {
		ns, err := decoder.ParseNamespace(prefix)
		if err != nil {
			p.Err = apperrors.InvalidInput(p.Origin, err)
			return p
		}
		p.Namespace = ns
		text = strings.TrimSpace(rest)
	}

	data, err := s.encoding.Decode(text)
	if err != nil {
		p.Err = apperrors.InvalidInput(fmt.Sprintf("%s payload on %s", s.encoding, p.Origin), err)
		s.GetLogger().Debug("skipping undecodable line", "line", s.line, "error", err)
		return p
	}
	p.Data = data
	return p
}
