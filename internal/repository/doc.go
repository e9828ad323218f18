// Package repository fetches node, member and taxonomy documents from an
// Islandora (Drupal) repository over its JSON REST API.
//
// Every request is a GET of {base}{path}?_format=json. Node and member
// documents for live fetches are requested with basic auth; parent nodes
// and taxonomy terms are requested anonymously. Requests are sequential
// and, unless a retry executor is configured, attempted once.
package repository
