package langflow

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	inputTypeChat  = "chat"
	outputTypeChat = "chat"
)
