// Package port provides per-project-type port defaults and validation.
//
// Each project type has a conventional default port (.NET web apps bind 80,
// Node.js apps 3000, Go apps 8080). The wizard preseeds its port prompt from
// these defaults, and user overrides from config.toml take precedence.
//
//	p := port.Default("dotnet", userDefaults) // 80
//	err := port.Validate(p)
package port
