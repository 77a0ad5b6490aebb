// Package image is the router mounted at /api/image.
//
// It is a thin passthrough to object storage: images are kept under the
// "images/" prefix of the configured bucket and served back verbatim. The
// bucket is created on the first upload.
//
// # HTTP Endpoints
//
//   - GET    /api/image       : list image names.
//   - GET    /api/image/:name : stream an image (404 when missing).
//   - PUT    /api/image/:name : store the raw request body (201).
//   - DELETE /api/image/:name : remove an image (204).
//
// Names must match [A-Za-z0-9._-]+ and may not contain "..".
package image
