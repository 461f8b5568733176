package appointment

import "github.com/m04kA/SMC-SchedulerService/pkg/txmanager"

// DBExecutor поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
