package bootstrap

import "context"

// AuditLog is one administrative event worth keeping a trace of (deletes,
// exports, shutdown).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
