package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"sheetex/domain/tabular"
	"sheetex/internal/errors"
)

// MessageType discriminates the invocation output messages.
type MessageType string

const (
	MessageJSON MessageType = "json"
	MessageText MessageType = "text"
)

// Message is one unit of tool output handed back to the host runtime.
type Message struct {
	Type MessageType            `json:"type"`
	Text string                 `json:"text,omitempty"`
	JSON map[string]interface{} `json:"json,omitempty"`
}

// ToolParameters are the invocation inputs supplied by the host runtime.
type ToolParameters struct {
	TableFields string
	File        tabular.RawFile
}

// ExtractorTool is the invocation boundary. On success it emits a JSON
// message {"result": [...]} plus a text echo of the same JSON; on any
// failure it emits a single "Error: ..." text message. Error kinds are not
// distinguished to the caller beyond the message text.
type ExtractorTool struct {
	service *ExtractService
}

// NewExtractorTool wraps the extraction pipeline in the tool boundary.
func NewExtractorTool(service *ExtractService) *ExtractorTool {
	return &ExtractorTool{service: service}
}

// Invoke runs one extraction and never returns an error: failures are
// flattened into the message stream, which is all the caller inspects.
func (t *ExtractorTool) Invoke(ctx context.Context, params ToolParameters) []Message {
	records, err := t.service.Extract(ctx, params.File, params.TableFields)
	if err != nil {
		log.Printf("[tool] extraction failed: %v", err)
		return []Message{errorMessage(err)}
	}

	output := map[string]interface{}{"result": records}
	echo, err := marshalEcho(output)
	if err != nil {
		log.Printf("[tool] result serialization failed: %v", err)
		return []Message{errorMessage(errors.InternalError(fmt.Sprintf("failed to serialize result: %v", err)))}
	}

	return []Message{
		{Type: MessageJSON, JSON: output},
		{Type: MessageText, Text: echo},
	}
}

func errorMessage(err error) Message {
	return Message{Type: MessageText, Text: "Error: " + err.Error()}
}

// marshalEcho serializes the result for the human-readable text message,
// keeping non-ASCII text readable rather than escaped.
func marshalEcho(output map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(output); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
