// Package docs Directory Platform API.
//
// Multi-tenant business directory platform. One deployment serves a
// fleet of niche directory sites; every site is a (vertical, state)
// pair reached through its own domain.
//
// Capabilities:
// - Host-based tenant resolution with a reserved admin host
// - Directory route grammar over per-site category and city taxonomies
// - Tenant administration: sites, enablement toggles, listing imports
// - Platform statistics
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
