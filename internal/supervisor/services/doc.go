// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package services contains suture.Service wrappers for supervised components.

Each wrapper translates a component's native lifecycle into suture's
Serve(ctx) contract: start the component, block until the context is
canceled or the component fails, then shut it down cleanly. The only
wrapper Homematch currently needs is HTTPServerService, which adapts
*http.Server's blocking ListenAndServe/Shutdown pair.
*/
package services
