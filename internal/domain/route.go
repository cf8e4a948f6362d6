package domain

// RouteKind tags every page type the platform can serve. The union is
// closed: the dispatcher must handle each tag and tests walk AllRouteKinds.
type RouteKind string

const (
	RouteHome                  RouteKind = "home"
	RouteDirectoryBase         RouteKind = "directory-base"
	RouteDirectoryCategory     RouteKind = "directory-category"
	RouteDirectoryCity         RouteKind = "directory-city"
	RouteDirectoryCategoryCity RouteKind = "directory-category-city"
	RouteDirectoryBusiness     RouteKind = "directory-business"
	RouteDirectoryState        RouteKind = "directory-state"
	RouteContentCategory       RouteKind = "content-category"
	RouteContentArticle        RouteKind = "content-article"
)

// AllRouteKinds enumerates the closed union for exhaustiveness checks.
var AllRouteKinds = []RouteKind{
	RouteHome,
	RouteDirectoryBase,
	RouteDirectoryCategory,
	RouteDirectoryCity,
	RouteDirectoryCategoryCity,
	RouteDirectoryBusiness,
	RouteDirectoryState,
	RouteContentCategory,
	RouteContentArticle,
}

// Route is a parsed, immutable description of which page a path
// addresses. Slug fields are already validated against the taxonomy;
// BusinessID is opaque and validated downstream.
type Route struct {
	Kind         RouteKind
	CategorySlug string
	CitySlug     string
	StateSlug    string
	ArticleSlug  string
	BusinessID   string
}

// RenderTarget is the dispatcher's output: the page handler identifier
// plus the fully resolved parameter bundle that handler expects.
type RenderTarget struct {
	Handler  string
	Category *Category
	City     *City
	State    *State

	ArticleSlug string
	BusinessID  string
}
