// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotAuthenticated indicates the caller must log in first
type ErrNotAuthenticated struct{}

func (e *ErrNotAuthenticated) Error() string {
	return "please log in to save your resume"
}

// ErrPlanLimit indicates the free-tier save cap was reached
type ErrPlanLimit struct {
	Limit int
}

func (e *ErrPlanLimit) Error() string {
	return fmt.Sprintf("free plan allows %d saved resume(s); upgrade to premium to save more", e.Limit)
}

// ErrRoleRequired indicates the caller lacks the required role
type ErrRoleRequired struct {
	Role string
}

func (e *ErrRoleRequired) Error() string {
	return fmt.Sprintf("requires %s role", e.Role)
}

// ErrResumeNotFound indicates the resume does not exist or belongs to
// another user
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrUpstreamUnavailable indicates an optional integration is not configured
type ErrUpstreamUnavailable struct {
	Service string
}

func (e *ErrUpstreamUnavailable) Error() string {
	return fmt.Sprintf("%s is not available", e.Service)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch, *ErrNotAuthenticated:
		return http.StatusUnauthorized
	case *ErrPlanLimit:
		return http.StatusPaymentRequired
	case *ErrRoleRequired:
		return http.StatusForbidden
	case *ErrUserNotFound, *ErrResumeNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
