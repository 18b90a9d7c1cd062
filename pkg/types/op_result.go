package types

// OpResult holds the outcome of a file operation attempt for a single path.
// Batch operations (paste, delete) report one result per item and never
// abort on an individual failure.
type OpResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Done        bool   `json:"done"`
	Error       error  `json:"error,omitempty"`
}
