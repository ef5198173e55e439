package dto

import (
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

const (
	msgRequired = "is required"
	msgNotNull  = "must not be null"
)

// CreateProcessRequest represents the JSON body for creating a process.
type CreateProcessRequest struct {
	Name         string  `json:"name"                    validate:"required"`
	DepartmentID *int64  `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	Description  *string `json:"description,omitempty"   validate:"omitempty,max=2000"`
	CreatedBy    *int64  `json:"created_by,omitempty"    validate:"omitempty,gt=0"`
}

// Validate checks the request shape. Business rules such as the name
// length are enforced by the domain.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProcessRequest) Validate() error {
	return validateStruct(r)
}

// ToInput converts the request to the service input.
func (r *CreateProcessRequest) ToInput() ports.CreateProcessInput {
	return ports.CreateProcessInput{
		Name:         r.Name,
		DepartmentID: r.DepartmentID,
		Description:  r.Description,
		CreatedBy:    r.CreatedBy,
	}
}

// CreateRoleRequest represents the JSON body for creating a role.
type CreateRoleRequest struct {
	Name        string  `json:"name"                  validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	CreatedBy   *int64  `json:"created_by,omitempty"  validate:"omitempty,gt=0"`
}

// Validate checks the request shape. The name length is a domain rule.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateRoleRequest) Validate() error {
	return validateStruct(r)
}

// ToInput converts the request to the service input.
func (r *CreateRoleRequest) ToInput() ports.CreateRoleInput {
	return ports.CreateRoleInput{Name: r.Name, Description: r.Description, CreatedBy: r.CreatedBy}
}

// UpdateProcessRequest represents the JSON body for a partial process
// update. Absent keys are left unchanged; null clears department and
// description.
type UpdateProcessRequest struct {
	Name         Field[string] `json:"name,omitzero"`
	DepartmentID Field[int64]  `json:"department_id,omitzero" validate:"omitempty,gt=0"`
	Description  Field[string] `json:"description,omitzero"   validate:"omitempty,max=2000"`
}

// Validate checks the request shape.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProcessRequest) Validate() error {
	extra := make(map[string]string)
	if r.Name.Null() {
		extra["name"] = msgNotNull
	}
	return merge(validateStruct(r), extra)
}

// ToInput converts the request to the service input.
func (r *UpdateProcessRequest) ToInput() ports.UpdateProcessInput {
	return ports.UpdateProcessInput{
		Name:         r.Name.Required(),
		DepartmentID: r.DepartmentID.Nullable(),
		Description:  r.Description.Nullable(),
	}
}

// AddStepRequest represents the JSON body for adding a step to a process.
type AddStepRequest struct {
	Name           string `json:"name"                       validate:"required"`
	Order          *int   `json:"order"                      validate:"required"`
	AssignedRoleID *int64 `json:"assigned_role_id,omitempty" validate:"omitempty,gt=0"`
}

// Validate checks that name and order are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddStepRequest) Validate() error {
	return validateStruct(r)
}

// ToInput converts the request to the service input. Call after Validate.
func (r *AddStepRequest) ToInput() ports.AddStepInput {
	in := ports.AddStepInput{Name: r.Name, AssignedRoleID: r.AssignedRoleID}
	if r.Order != nil {
		in.Order = *r.Order
	}
	return in
}

// UpdateStepRequest represents the JSON body for a partial step update.
// Null clears the assigned role; name and order cannot be cleared.
type UpdateStepRequest struct {
	Name           Field[string] `json:"name,omitzero"`
	Order          Field[int]    `json:"order,omitzero"`
	AssignedRoleID Field[int64]  `json:"assigned_role_id,omitzero" validate:"omitempty,gt=0"`
}

// Validate checks the request shape.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateStepRequest) Validate() error {
	extra := make(map[string]string)
	if r.Name.Null() {
		extra["name"] = msgNotNull
	}
	if r.Order.Null() {
		extra["order"] = msgNotNull
	}
	return merge(validateStruct(r), extra)
}

// ToInput converts the request to the service input.
func (r *UpdateStepRequest) ToInput() ports.UpdateStepInput {
	return ports.UpdateStepInput{
		Name:           r.Name.Required(),
		Order:          r.Order.Required(),
		AssignedRoleID: r.AssignedRoleID.Nullable(),
	}
}

// StartExecutionRequest represents the JSON body for starting a step of a
// process.
type StartExecutionRequest struct {
	StepID int64  `json:"step_id"           validate:"required,gt=0"`
	UserID *int64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

// Validate checks that the step is identified.
// Returns a *domain.ValidationError if any checks fail.
func (r *StartExecutionRequest) Validate() error {
	return validateStruct(r)
}

// ToInput converts the request to the service input.
func (r *StartExecutionRequest) ToInput() ports.StartExecutionInput {
	return ports.StartExecutionInput{StepID: r.StepID, UserID: r.UserID}
}

// RestartExecutionRequest is the optional JSON body of a restart. Without
// user_id the current user is kept.
type RestartExecutionRequest struct {
	UserID *int64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

// Validate checks the request shape.
// Returns a *domain.ValidationError if any checks fail.
func (r *RestartExecutionRequest) Validate() error {
	return validateStruct(r)
}

// User returns the user to record, if any.
func (r *RestartExecutionRequest) User() domain.Optional[int64] {
	return domain.FromPtr(r.UserID)
}

// FinishExecutionRequest is the optional JSON body of a complete or cancel.
// Blank remarks keep the current ones.
type FinishExecutionRequest struct {
	Remarks *string `json:"remarks,omitempty" validate:"omitempty,max=2000"`
}

// Validate checks the request shape.
// Returns a *domain.ValidationError if any checks fail.
func (r *FinishExecutionRequest) Validate() error {
	return validateStruct(r)
}

// RemarksText returns the remarks to record, if any.
func (r *FinishExecutionRequest) RemarksText() domain.Optional[string] {
	return domain.FromPtr(r.Remarks)
}
