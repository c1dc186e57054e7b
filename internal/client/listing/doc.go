// Package listing shapes already-fetched collections for display: sparse
// filter compilation, client-side pagination and category search.
package listing
