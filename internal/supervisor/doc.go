// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package supervisor provides process supervision for AlgoPath using suture v4.

The tree has two layers:

	RootSupervisor ("algopath")
	├── DataSupervisor ("data-layer")
	│   └── ReloadService   polls the problem table file and reloads it
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are
logged through sutureslog, whose slog output is bridged to zerolog by
logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewReloadService(lookupSvc, fileSource, reloadCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second, logger))

	errCh := tree.ServeBackground(ctx)

See the services subpackage for the service wrappers.
*/
package supervisor
