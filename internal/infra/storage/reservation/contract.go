package reservation

import (
	"github.com/terminalstudios/booking-service/pkg/dbmetrics"
)

// DBExecutor is shared with dbmetrics so the repository works both on the
// raw pool and on the instrumented wrapper
type DBExecutor = dbmetrics.DBExecutor
