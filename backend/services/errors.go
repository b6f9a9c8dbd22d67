package services

import "errors"

var (
	// ErrNotFound means the referenced topic, content or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidContent means the content's question set is malformed or
	// the submission does not match its shape.
	ErrInvalidContent = errors.New("invalid content")
	// ErrInvalidReference means the content does not belong to the given topic.
	ErrInvalidReference = errors.New("content does not belong to topic")
	// ErrStorage wraps persistence layer failures. No retry is attempted;
	// the caller surfaces the failure to the client.
	ErrStorage = errors.New("storage failure")
)
