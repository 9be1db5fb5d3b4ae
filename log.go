package pathgeom

import (
	"log/slog"

	"honnef.co/go/pathgeom/internal/logging"
)

// SetLogger sets the logger that receives debug output, such as recursion
// limits being reached or requested accuracies being missed. Pass nil to
// discard all output, which is the default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
