package langflow

import "context"

// ILangFlow runs a hosted LangFlow flow.
type ILangFlow interface {
	// Run sends input to the flow's run endpoint once.
	Run(ctx context.Context, input string) (*RunResult, error)

	// Configured reports whether both the API key and the run URL are set.
	Configured() bool
}

// New creates a new LangFlow client. Missing credentials are not an error
// here: Run reports ErrNotConfigured instead.
func New(cfg Config) ILangFlow {
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = newHTTPClient(timeout)
	}
	return &langflowImpl{
		apiKey:     cfg.APIKey,
		url:        cfg.URL,
		httpClient: cfg.HTTPClient,
	}
}
