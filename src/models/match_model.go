package models

// MatchCandidate is a scored discovery result. It is derived per request and
// never persisted.
type MatchCandidate struct {
	UserDto
	MatchScore       int              `json:"matchScore"`
	ConnectionStatus ConnectionStatus `json:"connectionStatus"`
}
