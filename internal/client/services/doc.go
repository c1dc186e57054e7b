// Package services is the application layer between the terminal client and
// the marketplace API. Each service wraps client.Client calls, validates
// input and adds call context to errors; the auth service also drives the
// session lifecycle.
package services
