//go:build !debug

package errreport

const debugBuild = false
