// Package server holds the HTTP server configuration and assembles the Fiber
// application.
//
// # Configuration
//
// Config is the raw, viper-populated section (PORT, NODE_ENV, FRONTEND_URL,
// body limits). Settings freezes it once at startup into the immutable value
// the origin gate and the startup sequencer receive: port, RuntimeMode and
// the AllowList made of DefaultOrigins plus FRONTEND_URL.
//
// # Application
//
// New wires the middleware chain and mounts the features loaded by a
// loader.Manager under /api. ErrorHandler renders every failure as JSON,
// mapping origin rejections to 403.
package server
