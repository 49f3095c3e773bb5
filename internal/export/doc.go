// Package export renders alarm statistics into downloadable reports.
package export
