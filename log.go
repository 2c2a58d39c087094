package spinor

import "log/slog"

// spinorLogger receives scan decisions and routing warnings. It is nil by
// default: a library caller opts in with SetLogger, and every log site
// nil-guards, so the core never forces a logging setup on its users.
var spinorLogger *slog.Logger

// SetLogger installs the logger the package logs through. Passing nil
// silences it again.
func SetLogger(l *slog.Logger) {
	spinorLogger = l
}
