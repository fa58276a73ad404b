// Package app wires the application dependencies for dockgen.
//
// App bundles the filesystem and user defaults behind a single value so
// commands can run against the real OS in production and against mocks
// in tests:
//
//	testApp := app.New(
//	    app.WithFS(mockFS),
//	    app.WithUserDefaults(&config.UserDefaults{Port: 5000}),
//	)
//	app.SetDefault(testApp)
package app
