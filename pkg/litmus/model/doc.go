// Package model holds the request and response shapes exchanged with the
// chaos control plane. REST types mirror the auth server's JSON bodies;
// GraphQL types mirror the /api/query schema and are used both as
// operation inputs and as decode targets.
package model
