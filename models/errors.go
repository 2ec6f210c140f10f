package models

import (
	"errors"
	"strings"
)

var (
	ErrUnauthenticated           = errors.New("not authenticated")
	ErrNoActiveOrganization      = errors.New("no active organization selected")
	ErrForbidden                 = errors.New("forbidden")
	ErrNotFound                  = errors.New("not found")
	ErrDuplicateSerialNumber     = errors.New("an asset with this serial number already exists")
	ErrAssigneeNotFound          = errors.New("assignee not found")
	ErrAssigneeNotInOrganization = errors.New("assignee is not a member of this organization")
	ErrImageUploadFailed         = errors.New("image upload failed")
	ErrNoDataFound               = errors.New("no data found for the selected criteria")
	ErrInvalidInput              = errors.New("invalid input")
	ErrWebhookVerification       = errors.New("webhook verification failed")
	ErrInternal                  = errors.New("internal error")
)

type errorKind struct {
	err    error
	name   string
	status int
}

// ordered: more specific kinds first
var errorKinds = []errorKind{
	{ErrUnauthenticated, "Unauthenticated", 401},
	{ErrNoActiveOrganization, "NoActiveOrganization", 400},
	{ErrForbidden, "Forbidden", 403},
	{ErrDuplicateSerialNumber, "DuplicateSerialNumber", 409},
	{ErrAssigneeNotFound, "AssigneeNotFound", 404},
	{ErrAssigneeNotInOrganization, "AssigneeNotInOrganization", 400},
	{ErrImageUploadFailed, "ImageUploadFailed", 502},
	{ErrNoDataFound, "NoDataFound", 404},
	{ErrNotFound, "NotFound", 404},
	{ErrInvalidInput, "InvalidInput", 400},
	{ErrWebhookVerification, "WebhookVerificationFailed", 400},
}

func lookupKind(err error) (errorKind, bool) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k, true
		}
	}
	return errorKind{}, false
}

// ErrorKind returns the client facing kind name of err and the status it maps to.
// Errors outside the known set map to InternalError.
func ErrorKind(err error) (string, int) {
	if k, ok := lookupKind(err); ok {
		return k.name, k.status
	}
	return "InternalError", 500
}

// PublicMessage returns the part of err's text that starts at its kind,
// dropping the wrap context added on the way up. Detail attached after the
// kind is kept. Errors outside the known set yield an empty string.
func PublicMessage(err error) string {
	k, ok := lookupKind(err)
	if !ok {
		return ""
	}
	text, kindText := err.Error(), k.err.Error()
	if i := strings.LastIndex(text, kindText); i >= 0 {
		return text[i:]
	}
	return kindText
}
