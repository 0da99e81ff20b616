package postgres

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

var (
	tracer = otel.Tracer("campus/internal/adapters/repos/postgres")
	logger = otelslog.NewLogger("campus/internal/adapters/repos/postgres")
)
