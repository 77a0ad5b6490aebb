// Package middleware groups the HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns a request ID (RayID) to every request and echoes it in
//     the X-Ray-ID response header.
//   - requestlog: logs request start, completion and errors through zap.
//   - jsonbody: decodes application/json bodies before any router runs.
//   - origin: the origin gate. Admits or rejects each request by its Origin
//     header and sets the CORS response headers for admitted origins.
//
// They are registered globally, in that order, by the server package.
package middleware
