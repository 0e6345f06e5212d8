package chat

import "encoding/json"

// Record is the result of one turn.
type Record struct {
	User     string `json:"user"`
	Message  string `json:"message"`
	Response string `json:"response"`
}

// NewRecord packages one exchange.
func NewRecord(user, message, response string) Record {
	return Record{
		User:     user,
		Message:  message,
		Response: response,
	}
}

// JSON encodes the record as a single JSON object.
func (r Record) JSON() ([]byte, error) {
	return json.Marshal(r)
}
