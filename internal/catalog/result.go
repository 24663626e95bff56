package catalog

// Result is the user-facing outcome of an add operation.
type Result struct {
	OK      bool
	Message string
	Err     error
}

func (r Result) String() string {
	return r.Message
}
