package response

// Resp is the envelope shared by every JSON response. Handlers embed it in
// their response DTOs so payload fields sit next to "success".
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	DefaultErrorMessage = "Something went wrong"
)
