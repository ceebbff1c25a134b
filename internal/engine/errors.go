package engine

import "fmt"

// SchemaMismatchError aborts an evaluation: an answer references a
// question the schema does not define, or the schema itself is missing
// a required binding. Everything softer than this degrades into a
// Diagnostic instead.
type SchemaMismatchError struct {
	QuestionID string
	CategoryID string
	Reason     string
}

func (e *SchemaMismatchError) Error() string {
	switch {
	case e.QuestionID != "" && e.CategoryID != "":
		return fmt.Sprintf("schema mismatch: question %q in category %q: %s", e.QuestionID, e.CategoryID, e.Reason)
	case e.QuestionID != "":
		return fmt.Sprintf("schema mismatch: question %q: %s", e.QuestionID, e.Reason)
	case e.CategoryID != "":
		return fmt.Sprintf("schema mismatch: category %q: %s", e.CategoryID, e.Reason)
	default:
		return "schema mismatch: " + e.Reason
	}
}
