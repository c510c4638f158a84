// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package alert writes the notification headers that front-end clients turn into
toasts after a mutating request.

Alerts travel next to the response body, never inside it:

	X-authordeskApp-alert:  authordeskApp.author.created
	X-authordeskApp-params: 42

Failures use a separate header so clients can style them differently:

	X-authordeskApp-error:  error.idexists
	X-authordeskApp-params: author
*/
package alert

import (
	"net/http"
	"strings"
)

// DefaultApp is the header namespace used when none is configured.
const DefaultApp = "authordeskApp"

// Kind distinguishes success notifications from failures.
type Kind int

const (
	KindSuccess Kind = iota
	KindFailure
)

// Alert is one notification. Key is the translation key shown by the client,
// Param the value interpolated into it.
type Alert struct {
	Kind    Kind
	Key     string
	Param   string
	Message string
}

// Writer builds alerts and writes them under a fixed application namespace.
// It is immutable and safe for concurrent use.
type Writer struct {
	app string
}

// NewWriter returns a Writer for the given namespace, falling back to [DefaultApp].
func NewWriter(app string) *Writer {
	app = strings.TrimSpace(app)
	if app == "" {
		app = DefaultApp
	}
	return &Writer{app: app}
}

// AlertHeader is the success header name, e.g. "X-authordeskApp-alert".
func (w *Writer) AlertHeader() string { return "X-" + w.app + "-alert" }

// ErrorHeader is the failure header name, e.g. "X-authordeskApp-error".
func (w *Writer) ErrorHeader() string { return "X-" + w.app + "-error" }

// ParamsHeader carries the alert parameter.
func (w *Writer) ParamsHeader() string { return "X-" + w.app + "-params" }

// # Builders

// Created signals that an entity of the given kind was created with id.
func (w *Writer) Created(entity, id string) Alert {
	return w.success(entity, "created", id)
}

// Updated signals that the entity with id was updated.
func (w *Writer) Updated(entity, id string) Alert {
	return w.success(entity, "updated", id)
}

// Deleted signals that the entity with id was deleted.
func (w *Writer) Deleted(entity, id string) Alert {
	return w.success(entity, "deleted", id)
}

// Failure signals that an operation on entity failed with errorKey.
// Message is a fallback text for clients that cannot translate the key.
func (w *Writer) Failure(entity, errorKey, message string) Alert {
	return Alert{
		Kind:    KindFailure,
		Key:     "error." + errorKey,
		Param:   entity,
		Message: message,
	}
}

func (w *Writer) success(entity, action, id string) Alert {
	return Alert{
		Kind:  KindSuccess,
		Key:   w.app + "." + entity + "." + action,
		Param: id,
	}
}

// # Output

// Apply writes a onto header. It must run before the status line is written.
func (w *Writer) Apply(header http.Header, a Alert) {
	if a.Kind == KindFailure {
		header.Set(w.ErrorHeader(), a.Key)
	} else {
		header.Set(w.AlertHeader(), a.Key)
	}
	header.Set(w.ParamsHeader(), a.Param)
}
