// Package pipeline fans independent jobs out to a worker pool and hands the
// results back in input order. It knows nothing about templates, primers or
// output formats.
package pipeline
