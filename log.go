package orderedsets

import (
	"github.com/sirupsen/logrus"
	"github.com/tabcat/ordered-sets/internal/config"
)

// Log receives the package's debug and trace output. It is quiet at the
// default level; set ORDERED_SETS_LOG_LEVEL=trace to see traversal summaries.
var Log = logrus.New()

func init() {
	Log.SetLevel(config.LogLevel())
}
