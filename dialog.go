package feedback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/feedback/core/body"
	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/form"
	"github.com/dmitrymomot/feedback/core/i18n"
	"github.com/dmitrymomot/feedback/core/logger"
	"github.com/dmitrymomot/feedback/core/validator"
	"github.com/dmitrymomot/feedback/pkg/async"
)

// Dialog drives one displayed feedback dialog from submit to outcome.
//
// Submit, Edited and Dismiss are meant to be called from the host's UI thread.
// The send itself runs on a worker goroutine and its outcome is posted back
// through Host.Post.
type Dialog struct {
	ctx      context.Context
	host     Host
	sender   email.EmailSender
	settings settings
	form     form.Form
	network  NetworkChecker
	log      *slog.Logger
	tr       *i18n.Translator

	mu     sync.Mutex
	status Status
	closed bool
}

// Submit starts a submission attempt.
//
// It returns ErrNoNetwork or ErrRequiredFieldMissing when the attempt is
// rejected locally, ErrSendInProgress while a previous send is pending and
// ErrDialogClosed once the dialog is gone. A nil error means the send has
// started; its outcome is reported through the Host and Status.
//
// The network check runs synchronously on the caller's goroutine. With the
// default checker it can block for netcheck.DefaultTimeout per probed address.
func (d *Dialog) Submit() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDialogClosed
	}
	if d.status.State == Sending || d.status.State == Validating {
		d.mu.Unlock()
		return ErrSendInProgress
	}
	d.status = Status{State: Validating}
	d.mu.Unlock()

	attempt := uuid.NewString()
	log := d.log.With(logger.AttemptID(attempt))

	if !d.network.IsNetworkAvailable(d.ctx) {
		d.reject(log, ErrNoNetwork)
		d.host.Notify(d.tr.T(i18n.MsgNoNetwork))
		return ErrNoNetwork
	}

	primary := d.form.PrimaryValue()
	if err := validator.Apply(validator.NotEmpty("feedback", primary)); err != nil {
		d.reject(log, ErrRequiredFieldMissing)
		d.host.SetFieldError(d.tr.T(i18n.MsgRequiredField))
		return ErrRequiredFieldMissing
	}

	content := body.Format(d.settings.mode, primary, d.form.Entries())
	params := d.settings.email.Params(content, d.settings.mode.ContentType())

	d.mu.Lock()
	d.status = Status{State: Sending}
	d.mu.Unlock()

	d.host.ShowProgress(d.tr.T(i18n.MsgSending))
	log.Info("sending feedback", logger.Recipient(params.SendTo), logger.Key("content_type", string(params.ContentType)))

	start := time.Now()
	async.Exec(d.ctx, params, d.sender.SendEmail).Then(func(err error) {
		d.host.Post(func() { d.complete(log, start, err) })
	})
	return nil
}

// Edited tells the dialog the user changed an input. A failed attempt goes back to Idle.
func (d *Dialog) Edited() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status.State == Failed {
		d.status = Status{State: Idle}
	}
}

// Dismiss closes the dialog through the negative action. It is safe to call
// in any state and more than once. A pending send is not interrupted, but its
// outcome will be ignored.
func (d *Dialog) Dismiss() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	sending := d.status.State == Sending
	d.mu.Unlock()

	if sending {
		d.host.HideProgress()
		d.log.Info("dialog dismissed while sending")
	}
	d.host.Close()
}

// Status returns the current submission state.
func (d *Dialog) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// Closed reports whether the dialog was dismissed or closed after a successful send.
func (d *Dialog) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Form returns the bound inputs of the dialog.
func (d *Dialog) Form() form.Form {
	return d.form
}

// Title returns the title the dialog was rendered with.
func (d *Dialog) Title() string {
	return d.settings.render.Title
}

func (d *Dialog) reject(log *slog.Logger, reason error) {
	d.mu.Lock()
	d.status = Status{State: Failed, Err: reason}
	d.mu.Unlock()
	log.Info("feedback rejected", logger.Result("rejected"), logger.Error(reason))
}

// complete runs on the UI thread once the send has settled.
func (d *Dialog) complete(log *slog.Logger, start time.Time, err error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		log.Debug("send completed after dismiss", logger.Error(err), logger.Elapsed(start))
		return
	}
	if err == nil {
		d.status = Status{State: Succeeded}
		d.closed = true
	} else {
		d.status = Status{State: Failed, Err: &SendError{Detail: err}}
	}
	d.mu.Unlock()

	d.host.HideProgress()
	if err != nil {
		log.Error("feedback send failed", logger.Result("failure"), logger.Error(err), logger.Elapsed(start))
		d.host.Notify(d.tr.T(i18n.MsgUnknownError))
		return
	}
	log.Info("feedback sent", logger.Result("success"), logger.Elapsed(start))
	d.host.Notify(d.tr.T(i18n.MsgSuccess))
	d.host.Close()
}
