// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package logging provides the process-wide zerolog logger for Cinesim.
//
// Output is JSON by default and human-readable console text when the format
// is "console". The global logger is configured once at startup and read
// through accessor functions:
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//	logging.Info().Int("items", n).Msg("catalog loaded")
//
// Components take a tagged child logger:
//
//	log := logging.WithComponent("catalog")
//
// Request and correlation IDs travel in a context.Context and are attached
// by Ctx:
//
//	ctx = logging.ContextWithRequestID(ctx, id)
//	logging.Ctx(ctx).Warn().Msg("title not found")
//
// SlogHandler adapts the logger to log/slog for the supervisor tree, whose
// event hook speaks slog only.
package logging
