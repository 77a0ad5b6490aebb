// Package user is the router mounted at /api/user.
//
// Accounts, sessions and credentials live outside this service; the router
// only exposes the health of the database it shares with the process.
//
// # HTTP Endpoints
//
//   - GET /api/user/status : database ping and pool statistics (503 when down).
package user
