package process

// Status is the lifecycle state of an Execution. No transition table is
// enforced; Start, Complete and Cancel are conveniences over SetStatus.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusStarted   Status = "iniciado"
	StatusCompleted Status = "concluido"
	StatusCancelled Status = "cancelado"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusStarted, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
