package txn

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/webcore/logger"
)

// BodyFunc is the unit of work run inside a scope. The context it receives
// carries the scope, so nested RunScoped calls join it.
type BodyFunc func(ctx context.Context, scope *Scope) error

// Coordinator runs bodies inside driver transactions with all-or-nothing
// semantics. It performs no retries; a caller that wants retry-on-conflict
// re-invokes RunScoped with a fresh scope.
type Coordinator struct {
	driver Driver
	log    *logger.Logger
	tracer trace.Tracer
}

// New creates a Coordinator backed by the given driver.
func New(driver Driver, log *logger.Logger) *Coordinator {
	return &Coordinator{
		driver: driver,
		log:    log.WithComponent("txn"),
		tracer: otel.Tracer("github.com/skillsenselab/webcore/txn"),
	}
}

type scopeCtxKey struct{}

// ScopeFrom returns the open scope carried by ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeCtxKey{}).(*Scope)
	return s, ok
}

// RunScoped opens a scope, runs body, and commits when the body returns nil
// without having rolled back explicitly. Any error returned by the body (or
// a panic, or context cancellation) rolls the scope back and the original
// error is returned unchanged to the caller.
//
// When ctx already carries an open scope, the call joins it: the body runs
// against the enclosing transaction and commit/rollback stay with the
// outermost call. An error from a joined body marks the shared scope
// rollback-only before propagating.
func (c *Coordinator) RunScoped(ctx context.Context, body BodyFunc) error {
	if enclosing, ok := ScopeFrom(ctx); ok && enclosing.state == StateOpen {
		if err := body(ctx, enclosing); err != nil {
			enclosing.rollbackOnly = true
			return err
		}
		return nil
	}

	tx, err := c.driver.Begin(ctx)
	if err != nil {
		return fmt.Errorf("txn: begin: %w", err)
	}

	scope := newScope(tx)
	ctx = context.WithValue(ctx, scopeCtxKey{}, scope)

	ctx, span := c.tracer.Start(ctx, "txn.scope",
		trace.WithAttributes(attribute.String("txn.scope_id", scope.id)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			if scope.state == StateOpen {
				scope.state = StateRolledBack
				if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
					c.log.Error("Rollback after panic failed", logger.Fields(
						logger.FieldScopeID, scope.id,
						logger.FieldError, rbErr.Error(),
					))
				}
			}
			span.SetStatus(codes.Error, "panic")
			c.log.Error("Scope rolled back due to panic", logger.Fields(
				logger.FieldScopeID, scope.id,
				"panic", fmt.Sprintf("%v", r),
			))
			panic(r)
		}
	}()

	err = body(ctx, scope)

	// The body may have committed or rolled back explicitly.
	if scope.state != StateOpen {
		if scope.state == StateCommitted {
			span.AddEvent("commit")
		} else {
			span.AddEvent("rollback")
		}
		return err
	}

	if err == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		} else if scope.rollbackOnly {
			err = ErrRollbackOnly
		}
	}

	if err != nil {
		scope.state = StateRolledBack
		span.AddEvent("rollback")
		span.RecordError(err)
		span.SetStatus(codes.Error, "rolled back")
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			c.log.Error("Rollback failed", logger.Fields(
				logger.FieldScopeID, scope.id,
				logger.FieldError, rbErr.Error(),
			))
			return &RollbackFailureError{Original: err, Cause: rbErr}
		}
		c.log.Debug("Scope rolled back", logger.Fields(
			logger.FieldScopeID, scope.id,
			"operations", len(scope.records),
		))
		return err
	}

	if cmErr := tx.Commit(ctx); cmErr != nil {
		// The engine aborts a transaction it cannot commit; no writes persist.
		scope.state = StateRolledBack
		span.RecordError(cmErr)
		span.SetStatus(codes.Error, "commit failed")
		return fmt.Errorf("txn: commit: %w", cmErr)
	}

	scope.state = StateCommitted
	span.AddEvent("commit")
	c.log.Debug("Scope committed", logger.Fields(
		logger.FieldScopeID, scope.id,
		"operations", len(scope.records),
	))
	return nil
}
