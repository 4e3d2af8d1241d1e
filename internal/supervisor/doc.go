// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

/*
Package supervisor runs the long-lived parts of the server under suture v4.

The tree has two layers:

	RootSupervisor ("cinesim")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogService (startup build, interval and file-change reloads)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failure in one layer is restarted by its own supervisor. While the catalog
layer restarts, the API keeps answering from the last published model.

# Usage

	slogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddCatalogService(catalogSvc)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

Supervisor events (restarts, backoff, services that failed to stop) are
logged through sutureslog, which writes to the zerolog global logger via
logging.SlogHandler.

The service implementations live in the services subpackage.
*/
package supervisor
