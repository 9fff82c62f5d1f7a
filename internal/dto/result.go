package dto

// Result is the outcome of a write operation. Conflicts surface as Success=false.
type Result struct {
	Success bool `json:"success"`
}

// Succeeded is the positive write outcome.
func Succeeded() *Result { return &Result{Success: true} }

// Rejected is the write outcome for uniqueness or scheduling conflicts.
func Rejected() *Result { return &Result{Success: false} }
