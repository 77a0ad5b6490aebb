// Package loader provides the plugin-like feature loading system.
//
// Route groups (the user and image routers) are registered as Features and
// mounted by the Manager. The application treats them as opaque handler sets.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of features:
//   - Register() adds a feature
//   - LoadAll() mounts every enabled feature, in registration order
package loader
