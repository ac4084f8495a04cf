package gitea

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// ListOptions holds the pagination parameters shared by every listing
// endpoint. Zero values are treated as unset and never serialized.
type ListOptions struct {
	// Page is the 1-based page number of results to fetch.
	Page int `param:"page"`
	// Limit is the page size. The server's maximum applies when unset.
	Limit int `param:"limit"`
}

// Values projects an option struct onto URL query parameters.
//
// The wire name of each field comes from its `param` tag; a field without a
// tag uses its lowercased Go name, and `param:"-"` excludes a field entirely
// (path segments that are already part of the URL). Unset fields — nil
// pointers, empty strings, zero integers, empty slices — are omitted rather
// than rendered as empty values, because the remote API distinguishes absent
// parameters from explicitly empty ones. Slices are rendered as a single
// comma-joined value, never as repeated keys. Embedded structs (ListOptions)
// are flattened into the same parameter set.
//
// Booleans must be declared as *bool: a bare false is indistinguishable from
// unset.
func Values(opts any) url.Values {
	values := url.Values{}
	if opts == nil {
		return values
	}

	v := reflect.ValueOf(opts)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return values
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return values
	}

	appendStructValues(values, v)

	return values
}

func appendStructValues(values url.Values, v reflect.Value) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			appendStructValues(values, v.Field(i))

			continue
		}

		name := field.Tag.Get("param")
		if name == "-" {
			continue
		}

		if name == "" {
			name = strings.ToLower(field.Name)
		}

		if s, ok := fieldString(v.Field(i)); ok {
			values.Set(name, s)
		}
	}
}

// fieldString renders one field value, reporting false for unset fields.
func fieldString(v reflect.Value) (string, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		s := v.String()

		return s, s != ""
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()

		return strconv.FormatInt(n, 10), n != 0
	case reflect.Slice:
		if v.Len() == 0 {
			return "", false
		}

		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts[i] = elemString(v.Index(i))
		}

		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v.Interface()), true
	}
}

// elemString renders a slice element. Unlike fieldString, zero values are
// kept: an element's presence in the slice is what makes it set.
func elemString(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Pointer helpers for optional request fields.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }
