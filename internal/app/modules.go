package app

import (
	"github.com/dakotatools/dakgo/drivers/cantilever"
	"github.com/dakotatools/dakgo/drivers/shell"
	"github.com/dakotatools/dakgo/internal/driver"
)

// coreModules are the analysis drivers compiled into the default binary.
var coreModules = []driver.Module{
	cantilever.Module{},
	shell.Module{},
}
