package ecode

// Business error codes carried inside the api response body.
// 0 means no error; everything else maps to a stable message.
const (
	Success = 0

	Unknown      = 10001
	ValidateErr  = 10002
	NotFoundErr  = 10003
	DuplicateErr = 10004
	StateErr     = 10005
	DBErr        = 10006
)

var text = map[int]string{
	Success:      "OK",
	Unknown:      "internal error",
	ValidateErr:  "validation failed",
	NotFoundErr:  "record not found",
	DuplicateErr: "duplicate record",
	StateErr:     "illegal state transition",
	DBErr:        "database error",
}

// Text returns the default message for a code.
func Text(code int) string {
	if msg, ok := text[code]; ok {
		return msg
	}
	return text[Unknown]
}
