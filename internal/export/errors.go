package export

import "fmt"

// Export stages reported in ExportError
const (
	StagePrepare = "prepare"
	StagePrint   = "print"
	StageWrite   = "write"
)

// ExportError represents a failure while producing a PDF
type ExportError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error (%s): %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error (%s): %s", e.Stage, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
