package listing

import (
	"math"
	"net/url"
	"sort"
	"strconv"
)

// Filter is a sparse set of constraints. A missing key means unconstrained;
// a present key always carries a truthy value.
type Filter map[string]string

// Field names shared by the auction and product filter forms.
const (
	FieldSearchTerm = "searchTerm"
	FieldCategoryID = "categoryId"
	FieldStatus     = "status"
	FieldCondition  = "condition"
	FieldBrand      = "brand"
	FieldMinPrice   = "minPrice"
	FieldMaxPrice   = "maxPrice"
	FieldSellerID   = "sellerId"
)

var (
	AuctionFields = []string{FieldSearchTerm, FieldCategoryID, FieldStatus, FieldMinPrice, FieldMaxPrice, FieldSellerID}
	ProductFields = []string{FieldSearchTerm, FieldCategoryID, FieldCondition, FieldBrand, FieldMinPrice, FieldMaxPrice, FieldSellerID}
)

// queryNames renames fields whose wire name differs from the form name.
var queryNames = map[string]string{
	FieldSearchTerm: "search",
}

// Truthy reports whether a raw form value constrains anything. Empty
// strings, "false" and numeric zero are falsy.
func Truthy(v string) bool {
	if v == "" || v == "false" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && (f == 0 || math.IsNaN(f)) {
		return false
	}
	return true
}

// Compile keeps the truthy values of the listed fields. Names pass through
// unchanged and values are not coerced.
func Compile(fields []string, raw map[string]string) Filter {
	f := make(Filter, len(fields))
	for _, name := range fields {
		if v, ok := raw[name]; ok && Truthy(v) {
			f[name] = v
		}
	}
	return f
}

// With returns a copy of f with key set to value, or removed when value is
// falsy.
func (f Filter) With(key, value string) Filter {
	out := make(Filter, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	if Truthy(value) {
		out[key] = value
	} else {
		delete(out, key)
	}
	return out
}

// Query encodes f as API query parameters.
func (f Filter) Query() url.Values {
	q := make(url.Values, len(f))
	for k, v := range f {
		if wire, ok := queryNames[k]; ok {
			k = wire
		}
		q.Set(k, v)
	}
	return q
}

// Keys lists the set constraints in sorted order.
func (f Filter) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
