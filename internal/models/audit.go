package models

// Audit actions
const (
	ActionRegister   = "register"
	ActionLogin      = "login"
	ActionQuizCreate = "quiz.create"
	ActionQuizUpdate = "quiz.update"
	ActionQuizDelete = "quiz.delete"
)

// AuditEvent records who did what to which entity.
type AuditEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the action.
	Actor     string `json:"actor"`     // Actor is the username that performed the action.
	Action    string `json:"action"`    // Action is one of the Action* constants.
	Entity    string `json:"entity"`    // Entity is the kind of record affected, e.g. "quiz".
	EntityID  int64  `json:"entity_id"` // EntityID is the ID of the affected record.
}
