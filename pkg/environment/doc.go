// Package environment names the deployment environments (development,
// staging, production) and carries the active one through a context.Context.
//
//	env := environment.Parse(cfg.Env) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//
// Package logger uses Parse to pick level and format presets.
package environment
