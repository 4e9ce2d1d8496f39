package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-editor/internal/session"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

const (
	saveContentMessageType    = "editor.content.save"
	publishContentMessageType = "editor.content.publish"
	resetContentMessageType   = "editor.content.reset"
)

// SessionResolver yields the editing session a command acts on.
type SessionResolver interface {
	Session(page string) (*session.Session, error)
}

// SaveContentCommand persists the current draft for a page.
type SaveContentCommand struct {
	Page string `json:"page"`
}

// Type implements command.Message.
func (SaveContentCommand) Type() string { return saveContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveContentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Page) == "" {
		errs["page"] = validation.NewError("editor.content.save.page_required", "page is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishContentCommand saves the draft and promotes it to published.
type PublishContentCommand struct {
	Page string `json:"page"`
}

// Type implements command.Message.
func (PublishContentCommand) Type() string { return publishContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishContentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Page) == "" {
		errs["page"] = validation.NewError("editor.content.publish.page_required", "page is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResetContentCommand discards all edits and restores the page defaults.
// Confirm must be set explicitly; the operation destroys local work.
type ResetContentCommand struct {
	Page    string `json:"page"`
	Confirm bool   `json:"confirm"`
}

// Type implements command.Message.
func (ResetContentCommand) Type() string { return resetContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ResetContentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Page) == "" {
		errs["page"] = validation.NewError("editor.content.reset.page_required", "page is required")
	}
	if !m.Confirm {
		errs["confirm"] = validation.NewError("editor.content.reset.confirm_required", "reset requires explicit confirmation")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveContentHandler persists drafts through the session layer.
type SaveContentHandler struct {
	inner *Handler[SaveContentCommand]
}

// NewSaveContentHandler constructs a handler wired to the provided resolver.
func NewSaveContentHandler(resolver SessionResolver, logger interfaces.Logger, opts ...HandlerOption[SaveContentCommand]) *SaveContentHandler {
	exec := func(ctx context.Context, msg SaveContentCommand) error {
		sess, err := resolver.Session(msg.Page)
		if err != nil {
			return err
		}
		return sess.Save(ctx)
	}

	handlerOpts := []HandlerOption[SaveContentCommand]{
		WithLogger[SaveContentCommand](logger),
		WithOperation[SaveContentCommand]("content.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveContentHandler{
		inner: NewHandler[SaveContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveContentCommand].Execute.
func (h *SaveContentHandler) Execute(ctx context.Context, msg SaveContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PublishContentHandler publishes pages through the session layer.
type PublishContentHandler struct {
	inner *Handler[PublishContentCommand]
}

// NewPublishContentHandler constructs a handler wired to the provided resolver.
func NewPublishContentHandler(resolver SessionResolver, logger interfaces.Logger, opts ...HandlerOption[PublishContentCommand]) *PublishContentHandler {
	exec := func(ctx context.Context, msg PublishContentCommand) error {
		sess, err := resolver.Session(msg.Page)
		if err != nil {
			return err
		}
		return sess.Publish(ctx)
	}

	handlerOpts := []HandlerOption[PublishContentCommand]{
		WithLogger[PublishContentCommand](logger),
		WithOperation[PublishContentCommand]("content.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishContentHandler{
		inner: NewHandler[PublishContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishContentCommand].Execute.
func (h *PublishContentHandler) Execute(ctx context.Context, msg PublishContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ResetContentHandler restores page defaults through the session layer.
type ResetContentHandler struct {
	inner *Handler[ResetContentCommand]
}

// NewResetContentHandler constructs a handler wired to the provided resolver.
func NewResetContentHandler(resolver SessionResolver, logger interfaces.Logger, opts ...HandlerOption[ResetContentCommand]) *ResetContentHandler {
	exec := func(ctx context.Context, msg ResetContentCommand) error {
		sess, err := resolver.Session(msg.Page)
		if err != nil {
			return err
		}
		return sess.Reset()
	}

	handlerOpts := []HandlerOption[ResetContentCommand]{
		WithLogger[ResetContentCommand](logger),
		WithOperation[ResetContentCommand]("content.reset"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ResetContentHandler{
		inner: NewHandler[ResetContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ResetContentCommand].Execute.
func (h *ResetContentHandler) Execute(ctx context.Context, msg ResetContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
