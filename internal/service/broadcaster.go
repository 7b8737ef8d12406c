package service

// Broadcaster abstracts WebSocket broadcasting (avoids an import cycle
// with the transport layer). Implemented by ws.Hub.
type Broadcaster interface {
	BroadcastToSurvey(surveyID string, msgType string, payload interface{})
	DisconnectSurvey(surveyID string)
}
