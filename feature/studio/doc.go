// Package studio starts a Remotion Studio server for a project.
//
// The studio server itself (bundler, live reload, render queue, browser
// automation) is an external Node.js component. This package only assembles the
// configuration it needs and delegates the start to a Starter.
//
// # Configuration
//
// DefaultConfiguration is the named default record: fixed render defaults
// (h264, yuv420p, JPEG quality 80, concurrency 1, ...), browser arguments that
// disable web security and site isolation, and CLI-like flags. Merge
// shallow-merges the user-facing Options (port, project root, entry point,
// log level) onto it and resolves the entry point against the project root.
//
// # Hooks
//
// The studio server calls back for input props, environment variables and its
// render queue. Those are PropsSource and Queue; NoopProps and NoopQueue are the
// defaults. The webpack override is always the identity and lives in the bridge.
//
// # Node bridge
//
// NodeStarter runs the embedded bridge.js with node in the project root. The
// bridge speaks newline-delimited JSON: the start frame and call replies go to
// its stdin, calls and the started/failed outcome come back on descriptor 3 so
// the studio's own stdout and stderr pass through untouched.
//
// # Usage
//
//	svc := studio.NewService(studio.NewNodeStarter("node", log), studio.DefaultConfiguration(), studio.NoopHooks(), log)
//	inst, err := svc.StartStudio(ctx, studio.Options{Port: 3000})
//	if err != nil {
//	    return err
//	}
//	return inst.Wait()
package studio
