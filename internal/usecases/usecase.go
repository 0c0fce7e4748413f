// Package usecases holds the integrity rules, the mutation flows and the
// read projections of the code host. Every mutation runs in one store
// transaction; every read goes straight to the store.
package usecases

import (
	"errors"

	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/rs/zerolog"
)

type base struct {
	store repository.Store
	log   zerolog.Logger
}

// fail turns err into an *errcodes.Error. Anything that is not already one
// is an internal failure and gets logged with op; callers only see a
// generic message for those.
func (b base) fail(op string, err error) error {
	var e *errcodes.Error
	if !errors.As(err, &e) {
		err = errcodes.Internal(err, "%s failed", op)
		errors.As(err, &e)
	}
	if errcodes.KindOf(err) == errcodes.ErrInternal {
		ev := b.log.Error().Str("op", op)
		if cause := e.Cause(); cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg(e.Error())
	}
	return err
}
