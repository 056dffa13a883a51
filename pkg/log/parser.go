// Package log parses Solana transaction log messages.
//
// The parser tracks the invocation stack announced by "Program X invoke [N]"
// and "Program X success|failed" lines, so every "Program data:" payload can
// be attributed to the program frame that emitted it:
//
//	parser := log.NewParser()
//	for _, payload := range parser.ExtractProgramData(logMessages, programID) {
//		// dispatch payload as an event
//	}
package log

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// LogType represents the type of a log message.
type LogType int

const (
	// LogTypeUnknown represents an unrecognized log message.
	LogTypeUnknown LogType = iota
	// LogTypeInvoke represents a "Program X invoke [N]" message.
	LogTypeInvoke
	// LogTypeSuccess represents a "Program X success" message.
	LogTypeSuccess
	// LogTypeFailed represents a "Program X failed" message.
	LogTypeFailed
	// LogTypeData represents a "Program data: BASE64..." message.
	LogTypeData
	// LogTypeLog represents a "Program log: MESSAGE" message.
	LogTypeLog
	// LogTypeComputeUnits represents a compute units consumed message.
	LogTypeComputeUnits
	// LogTypeTruncated is the runtime's "Log truncated" marker.
	LogTypeTruncated
)

func (lt LogType) String() string {
	switch lt {
	case LogTypeInvoke:
		return "Invoke"
	case LogTypeSuccess:
		return "Success"
	case LogTypeFailed:
		return "Failed"
	case LogTypeData:
		return "Data"
	case LogTypeLog:
		return "Log"
	case LogTypeComputeUnits:
		return "ComputeUnits"
	case LogTypeTruncated:
		return "Truncated"
	default:
		return "Unknown"
	}
}

// ParsedLog represents a parsed log message with its type and extracted data.
type ParsedLog struct {
	Type LogType

	// StackHeight is the call depth (1-indexed). Only set for Invoke logs.
	StackHeight int

	// ProgramID is the program named by "Program X ..." messages.
	ProgramID string

	// Data holds the decoded chunks of a "Program data:" message. The runtime
	// writes one base64 chunk per slice passed to sol_log_data.
	Data [][]byte

	// Err is set when a data chunk is not valid base64.
	Err error

	// Message is the text from "Program log:" messages.
	Message string

	// ComputeUnits is the number of compute units consumed.
	ComputeUnits *uint64

	RawLog string
}

// LogParser parses Solana transaction logs.
type LogParser struct {
	patterns *logPatterns
}

type logPatterns struct {
	invoke       *regexp.Regexp
	success      *regexp.Regexp
	failed       *regexp.Regexp
	data         *regexp.Regexp
	log          *regexp.Regexp
	computeUnits *regexp.Regexp
}

// NewParser creates a new LogParser.
func NewParser() *LogParser {
	return &LogParser{
		patterns: &logPatterns{
			invoke:       regexp.MustCompile(`^Program (\S+) invoke \[(\d+)\]`),
			success:      regexp.MustCompile(`^Program (\S+) success`),
			failed:       regexp.MustCompile(`^Program (\S+) failed`),
			data:         regexp.MustCompile(`^Program data: (.+)$`),
			log:          regexp.MustCompile(`^Program log: (.+)$`),
			computeUnits: regexp.MustCompile(`^Program (\S+) consumed (\d+) of \d+ compute units`),
		},
	}
}

// Parse parses a single log message.
func (p *LogParser) Parse(logMessage string) *ParsedLog {
	result := &ParsedLog{
		Type:   LogTypeUnknown,
		RawLog: logMessage,
	}

	// Data and log lines first: their free text may look like a status line.
	if matches := p.patterns.data.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeData
		for _, chunk := range strings.Fields(matches[1]) {
			decoded, err := base64.StdEncoding.DecodeString(chunk)
			if err != nil {
				result.Err = fmt.Errorf("program data: %w", err)
				result.Data = nil
				break
			}
			result.Data = append(result.Data, decoded)
		}
		return result
	}

	if matches := p.patterns.log.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeLog
		result.Message = matches[1]
		return result
	}

	if matches := p.patterns.invoke.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeInvoke
		result.ProgramID = matches[1]
		result.StackHeight, _ = strconv.Atoi(matches[2])
		return result
	}

	if matches := p.patterns.success.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeSuccess
		result.ProgramID = matches[1]
		return result
	}

	if matches := p.patterns.failed.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeFailed
		result.ProgramID = matches[1]
		return result
	}

	if matches := p.patterns.computeUnits.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeComputeUnits
		result.ProgramID = matches[1]
		if cu, err := strconv.ParseUint(matches[2], 10, 64); err == nil {
			result.ComputeUnits = &cu
		}
		return result
	}

	if logMessage == "Log truncated" {
		result.Type = LogTypeTruncated
	}
	return result
}

// ParseAll parses every log message.
func (p *LogParser) ParseAll(logMessages []string) []*ParsedLog {
	results := make([]*ParsedLog, 0, len(logMessages))
	for _, log := range logMessages {
		results = append(results, p.Parse(log))
	}
	return results
}

// InstructionPath locates an invocation: [0] is the first top-level
// instruction, [0, 1] the second inner invocation made by it.
type InstructionPath []int

func (path InstructionPath) String() string {
	if len(path) == 0 {
		return "[]"
	}
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Equals checks if two paths are equal.
func (path InstructionPath) Equals(other InstructionPath) bool {
	if len(path) != len(other) {
		return false
	}
	for i := range path {
		if path[i] != other[i] {
			return false
		}
	}
	return true
}

// IsParentOf checks if this path is a strict prefix of other.
func (path InstructionPath) IsParentOf(other InstructionPath) bool {
	if len(path) >= len(other) {
		return false
	}
	for i := range path {
		if path[i] != other[i] {
			return false
		}
	}
	return true
}

// ProgramData is one "Program data:" payload together with the frame that emitted it.
type ProgramData struct {
	ProgramID string
	Path      InstructionPath
	// Line is the index of the log message within the transaction.
	Line int
	Data []byte
	Err  error
}

type frame struct {
	program  string
	path     InstructionPath
	children int
}

// ProgramData walks the invocation stack and returns every data payload in
// log order. Payloads logged outside any frame, or after the runtime
// truncated the log, are dropped. A data line with several chunks yields one
// entry per chunk.
func (p *LogParser) ProgramData(logMessages []string) []ProgramData {
	var (
		out      []ProgramData
		stack    []frame
		topLevel int
	)

	for i, raw := range logMessages {
		parsed := p.Parse(raw)

		switch parsed.Type {
		case LogTypeInvoke:
			depth := parsed.StackHeight
			if depth < 1 {
				continue
			}
			// A frame that never reported completion is closed implicitly.
			for len(stack) >= depth {
				stack = stack[:len(stack)-1]
			}
			var path InstructionPath
			if len(stack) == 0 {
				path = InstructionPath{topLevel}
				topLevel++
			} else {
				parent := &stack[len(stack)-1]
				path = append(append(InstructionPath(nil), parent.path...), parent.children)
				parent.children++
			}
			stack = append(stack, frame{program: parsed.ProgramID, path: path})

		case LogTypeSuccess, LogTypeFailed:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case LogTypeData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if parsed.Err != nil {
				out = append(out, ProgramData{ProgramID: top.program, Path: top.path, Line: i, Err: parsed.Err})
				continue
			}
			for _, chunk := range parsed.Data {
				out = append(out, ProgramData{ProgramID: top.program, Path: top.path, Line: i, Data: chunk})
			}

		case LogTypeTruncated:
			return out
		}
	}
	return out
}

// ExtractProgramData returns the payloads emitted inside frames of programID.
// Payloads logged by programs it invokes are excluded. Invalid base64 chunks
// are skipped.
func (p *LogParser) ExtractProgramData(logMessages []string, programID string) [][]byte {
	var data [][]byte
	for _, pd := range p.ProgramData(logMessages) {
		if pd.ProgramID == programID && pd.Err == nil && len(pd.Data) > 0 {
			data = append(data, pd.Data)
		}
	}
	return data
}

// FilterByInstructionPath returns the payloads emitted by the frame at targetPath.
func (p *LogParser) FilterByInstructionPath(logMessages []string, targetPath InstructionPath) []ProgramData {
	var filtered []ProgramData
	for _, pd := range p.ProgramData(logMessages) {
		if pd.Path.Equals(targetPath) {
			filtered = append(filtered, pd)
		}
	}
	return filtered
}
