package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"amaru/internal/apierror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// parseID checks the id format before any store access.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.BadRequest("ID inválido: %s", raw)
	}
	return id, nil
}

// parseIDOpcional parses an optional filter id; malformed values become nil.
func parseIDOpcional(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// obtener resolves raw to an entity: bad format is BadRequest, a missing row is NotFound.
func obtener[T any](ctx context.Context, find func(context.Context, uuid.UUID) (*T, error), raw, recurso string) (*T, error) {
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	e, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("%s con ID %s no encontrado", recurso, raw)
		}
		return nil, err
	}
	return e, nil
}

// existe reports whether find locates id. Lookup failures other than a
// missing row are returned as errors.
func existe[T any](ctx context.Context, find func(context.Context, uuid.UUID) (*T, error), id uuid.UUID) (*T, bool, error) {
	e, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return e, true, nil
}

func noEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func validarEstado(estado string, permitidos []string) error {
	for _, p := range permitidos {
		if estado == p {
			return nil
		}
	}
	return apierror.BadRequest("Estado debe ser: %s", strings.Join(permitidos, ", "))
}

// parseFecha accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseFecha(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

// parseFechaOpcional is parseFecha for filters: empty or unparsable input yields nil.
func parseFechaOpcional(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := parseFecha(raw)
	if err != nil {
		return nil
	}
	return &t
}

func mapSlice[M, D any](list []M, fn func(M) D) []D {
	out := make([]D, 0, len(list))
	for _, m := range list {
		out = append(out, fn(m))
	}
	return out
}

// escritura maps a write that matched no row, because it was deleted after
// being read, to NotFound.
func escritura(err error, recurso string, id uuid.UUID) error {
	if noEncontrado(err) {
		return apierror.NotFound("%s con ID %s no encontrado", recurso, id)
	}
	return err
}

// duplicado maps a unique index violation to Conflict. The services check
// natural keys before writing; the index still rejects concurrent writers
// that passed the check together.
func duplicado(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.Conflict(format, args...)
	}
	return err
}
