// Package model defines the company record types shared across the
// derivation pipeline, the catalog, and the persistence layer.
package model

import (
	"fmt"
	"strings"
)

// RawCompany is an open mapping as delivered by the partner API. Field
// names are inconsistent (German and English synonyms coexist) and no
// key is guaranteed present. Records are never mutated after receipt.
type RawCompany map[string]any

// Str returns the trimmed string value for key, or "" when the key is
// missing, null, not a string, or empty.
func (r RawCompany) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Text coerces the value for key to a string, accepting numbers as
// well as strings. Used for free-text fields like the founding year,
// which the API delivers as either.
func (r RawCompany) Text(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case int:
		return fmt.Sprintf("%d", t)
	default:
		return ""
	}
}

// StrSlice returns the string elements for key, skipping non-string
// entries. Returns nil when the key is missing or not a list.
func (r RawCompany) StrSlice(key string) []string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range list {
		if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Address is the optional structured address substructure.
type Address struct {
	Street  string
	Zip     string
	City    string
	Country string
}

// FirstAddress returns the first entry of the addresses list, if any.
func (r RawCompany) FirstAddress() (Address, bool) {
	v, ok := r["addresses"]
	if !ok || v == nil {
		return Address{}, false
	}
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return Address{}, false
	}
	m, ok := list[0].(map[string]any)
	if !ok {
		return Address{}, false
	}
	a := Address{
		Street:  RawCompany(m).Str("street"),
		Zip:     RawCompany(m).Str("zip"),
		City:    RawCompany(m).Str("city"),
		Country: RawCompany(m).Str("country"),
	}
	return a, true
}

// Coordinate is a WGS84 decimal-degree point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Company is a raw record plus the attributes derived once at load
// time. Instances are immutable after augmentation; filtering and
// sorting produce new slices, not mutations.
type Company struct {
	Raw         RawCompany `json:"raw"`
	ID          string     `json:"id"`
	Categories  []string   `json:"categories"`
	DistanceKm  *int       `json:"distance_km,omitempty"`
	FoundedYear *int       `json:"founded_year,omitempty"`
}

// Name returns the company display name, "" when absent.
func (c Company) Name() string {
	return c.Raw.Str("name")
}
