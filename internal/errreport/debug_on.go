//go:build debug

package errreport

// debugBuild enables the diagnostic line logged by Report.
const debugBuild = true
