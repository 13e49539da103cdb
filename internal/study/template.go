package study

import "fmt"

// DriverScript renders the analysis driver shim that DAKOTA forks once
// per evaluation. DAKOTA passes the parameters and results file paths as
// positional arguments, which the shim forwards to the driver runner.
func DriverScript(shimPath, driverName string) string {
	return fmt.Sprintf(`#!/bin/sh
# Generated analysis driver shim.
exec "%s" -driver "%s" "$@"
`, shimPath, driverName)
}
