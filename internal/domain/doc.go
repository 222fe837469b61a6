// Package domain contains the zoo's business entities (users, sections,
// animals, events and comments) together with their field rules.
// It is independent of storage and transport.
package domain
