package metrics

import "go.uber.org/fx"

// Module provides the service metrics.
var Module = fx.Provide(New)
