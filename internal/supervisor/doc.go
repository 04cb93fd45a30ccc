// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package supervisor runs the long-lived parts of playrec serve under suture v4.

The tree is small:

	RootSupervisor ("playrec")
	└── APISupervisor ("api-layer")
	    ├── HTTPServerService
	    └── SweepService (result cache, when enabled)

Supervisor events are logged through sutureslog, bridged into zerolog by
logging.NewSlogLogger, so restarts and backoffs appear in the same stream as
request logs.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddAPIService(supervisor.NewHTTPServerService(srv, 10*time.Second))
	errCh := tree.ServeBackground(ctx)

A failed ListenAndServe (for example a port already in use) is returned from
Serve and restarted with backoff until the failure threshold is hit.
*/
package supervisor
