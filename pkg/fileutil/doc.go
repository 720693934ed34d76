// Package fileutil reads and writes the small files munconf deals in:
// registration records, catalog overrides and configuration.
//
// Reads are capped at [MaxFileSize]. Writes go through a temporary file in
// the destination directory followed by a rename, so an interrupted write
// leaves the previous file intact.
package fileutil
