package errors

import "net/http"

var (
	ErrSiteNotFound = New(
		"SITE_NOT_FOUND",
		"No site is configured for this host",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Page not found",
		http.StatusNotFound,
	)

	ErrBusinessNotFound = New(
		"BUSINESS_NOT_FOUND",
		"Business not found",
		http.StatusNotFound,
	)

	ErrCitySlugCollision = New(
		"CITY_SLUG_COLLISION",
		"Two enabled cities derive the same slug",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDomainTaken = New(
		"DOMAIN_TAKEN",
		"A site already owns this domain",
		http.StatusConflict,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
