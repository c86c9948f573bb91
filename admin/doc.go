// Package admin exposes the operator-facing surface of the module: a
// Service that executes deployment commands either synchronously or through
// the full extension stack, and lets operators inspect the execution
// records produced by backgrounded runs.
//
//	svc, err := admin.NewService(deployments, executions,
//	    admin.WithLogger(log),
//	)
//
//	id, err := svc.Restart(ctx, deployment.ByName("tokens"))
//	// ... later ...
//	record, err := svc.Execution(ctx, id)
package admin
