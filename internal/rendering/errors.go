package rendering

import (
	"fmt"

	"github.com/jonathan/resume-preview/internal/types"
)

// TemplateError represents an error parsing or executing the HTML page shell
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a document tree that cannot be presented
type RenderError struct {
	Message string
	Role    types.NodeRole // node where the problem was found, if any
	Cause   error
}

func (e *RenderError) Error() string {
	msg := e.Message
	if e.Role != "" {
		msg = fmt.Sprintf("%s (in %s node)", msg, e.Role)
	}
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("render error: %s", msg)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
