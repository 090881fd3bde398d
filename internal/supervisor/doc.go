// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package supervisor provides process supervision using suture v4.

The supervisor tree keeps long-running components alive across transient
failures. Homematch runs a small tree:

	homematch (root)
	└── api-layer
	    └── http-server

Services implement suture.Service: a single Serve(ctx) method that blocks
until the context is canceled or the service fails. Failed services are
restarted with exponential backoff controlled by TreeConfig; restart events
are logged through a sutureslog hook fed by the application's zerolog
logger via its slog adapter.

Usage:

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

On shutdown timeout, UnstoppedServiceReport names the services that failed
to stop, which beats a silent hang in container logs.
*/
package supervisor
