// Package rest exposes the alarm API over HTTP using gin.
//
// Handlers depend on the Service interface only; middleware attaches a request
// id to the context logger, records Prometheus metrics and recovers panics.
package rest
