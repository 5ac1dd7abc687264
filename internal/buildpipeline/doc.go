// Package buildpipeline describes the stages a source file goes through
// (scan, translate, verify, write) and the progress events the driver
// reports while running them.
package buildpipeline
