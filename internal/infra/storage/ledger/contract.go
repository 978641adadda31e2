package ledger

import "github.com/m04kA/SMC-ServiceBooking/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
