// Package server exposes the game library and packed layouts over HTTP.
//
// The portal's server-side renderer calls /api/layout to get exactly the
// rows the browser would compute, so first paint and hydration agree.
//
// # Routes
//
//	GET /healthz                 build info and library size
//	GET /api/games               ?category=&difficulty=&available=
//	GET /api/games/{id}          one game
//	GET /api/categories          categories in display order
//	GET /api/layout              ?max=&trailing=&category=&available=&format=
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with "code" and "message" fields, the code taken from pkg/errors.
package server
