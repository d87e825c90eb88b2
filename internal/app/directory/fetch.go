package directory

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	dom "userdir/internal/domain/user"
	"userdir/internal/httpclient"
	"userdir/internal/logging"
)

const instrumentationName = "userdir/internal/app/directory"

// Fetch outcome kinds, used as log fields and metric attributes.
const (
	OutcomeOK            = "ok"
	OutcomeTransport     = "transport"
	OutcomeHTTPStatus    = "http_status"
	OutcomeMalformedBody = "malformed_body"
	OutcomeCanceled      = "canceled"
	OutcomeUnknown       = "unknown"
)

var (
	tracer = otel.Tracer(instrumentationName)

	fetchOutcomes = func() metric.Int64Counter {
		c, err := otel.Meter(instrumentationName).Int64Counter(
			"directory.fetch.outcomes",
			metric.WithDescription("User collection fetches by outcome"),
		)
		if err != nil {
			otel.Handle(err)
		}
		return c
	}()
)

// Classify maps a fetch error to one of the Outcome kinds.
func Classify(err error) string {
	var (
		httpErr      *httpclient.HTTPError
		transportErr *httpclient.TransportError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.As(err, &httpErr):
		return OutcomeHTTPStatus
	case errors.Is(err, dom.ErrMalformedResponse):
		return OutcomeMalformedBody
	case errors.As(err, &transportErr):
		return OutcomeTransport
	default:
		return OutcomeUnknown
	}
}

// load runs one fetch against source. Every failure collapses to an empty
// collection; the cause is only logged.
func load(ctx context.Context, source dom.Source, logger logging.Logger) []dom.User {
	ctx, span := tracer.Start(ctx, "directory.fetch")
	defer span.End()

	users, err := source.ListUsers(ctx)
	outcome := Classify(err)

	span.SetAttributes(attribute.String("directory.fetch.outcome", outcome))
	if fetchOutcomes != nil {
		fetchOutcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		if outcome == OutcomeCanceled {
			logger.Debug("user fetch canceled", "error", err)
		} else {
			logger.Error("failed to fetch users", "error", err, "kind", outcome)
		}
		return []dom.User{}
	}

	span.SetAttributes(attribute.Int("directory.fetch.count", len(users)))
	if users == nil {
		users = []dom.User{}
	}
	return users
}
