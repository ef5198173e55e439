package process

// Rule messages shared by more than one operation.
const (
	msgStepNameRequired  = "Step name is required."
	msgStepOrderNegative = "Step order must be >= 0."
	msgInvalidRoleID     = "Invalid RoleId."
	msgStepIDInvalid     = "StepId is invalid."
	msgProcessNameEmpty  = "Process name is required."
	msgProcessNameLong   = "Process name too long (max 200)."
)

// MaxNameLength is the longest accepted process name, in characters.
const MaxNameLength = 200

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
