// Package assets mirrors shared studio assets from object storage into a
// project's public directory before the studio starts.
//
// Objects under the configured prefix are downloaded when the local file is
// missing or its size differs; matching files are left alone. Keys that would
// land outside the public directory are reported as failures.
package assets
