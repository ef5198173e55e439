// Package domain holds what the entity packages share: the audit base every
// entity embeds, the error kinds mapped to API responses, Optional for
// partial updates, and the Action contract used to persist changes.
//
// Entities live in subpackages: process (processes, steps, executions), org
// (users and roles) and audit (the change log).
package domain
