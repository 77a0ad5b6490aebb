// Package origin implements the cross-origin admission gate.
//
// Every request's Origin header is evaluated by Decide against a static
// Policy: no origin is admitted, an allow-listed origin is admitted, any
// origin is admitted in development mode, everything else is denied.
// Decisions are never cached.
//
// The middleware returned by New rejects denied requests with a
// *RejectedError (errors.Is(err, ErrRejected)) before any router runs, and
// hands admitted requests to Fiber's CORS middleware so responses carry the
// matched origin and Access-Control-Allow-Credentials.
package origin
