// Package server exposes the render pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz            liveness and version
//	GET  /v1/factors         derived layout factors for the query measurements
//	GET  /v1/render.{format} render one format from query parameters
//	POST /v1/render          render from a JSON body
//
// Query parameters mirror the CLI flags: scale, count, nut, bridge, multi
// (treble scale, enables multiscale), pfret, left, units and border.
//
// Every response carries an X-Request-ID header. A request ID sent by the
// client is kept; otherwise a random UUID is assigned. Failures are
// reported as {"code": "...", "message": "..."} with status 400 for
// invalid measurements, 404 for missing files and 500 otherwise.
package server
