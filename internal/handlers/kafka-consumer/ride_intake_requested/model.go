package ride_intake_requested

// requestedEvent сообщение топика ride.intake.requested: свободный текст
// заявки от внешнего канала (телефония, чат-бот).
type requestedEvent struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}
