package rest

// Envelope is the response shape of every customer endpoint. Error carries
// either a field-error map (validation) or the underlying error string.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func ok(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func fail(message string, err any) Envelope {
	return Envelope{Success: false, Message: message, Error: err}
}
