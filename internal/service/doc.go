// Package service contains the zoo's use cases: managing animals, sections,
// events and comments, and registering and authenticating users.
//
// Services orchestrate the store interfaces from internal/store and never
// depend on a concrete database. Operations that check a uniqueness rule and
// then write run inside store.RunInTransaction, using the WithTx variant of
// each store; the database's unique constraints remain the final guard.
//
// Errors:
//   - validation failures are returned as *domain.ValidationError
//   - store sentinels (store.ErrNotFound, store.ErrDuplicate, ...) are wrapped with %w
//   - ErrForbidden, ErrCommentLimit and ErrInvalidCredentials are service-level conditions
//
// Photos are handled through imagestore.Store. New records get the configured
// default photo. Replaced or deleted photos are removed unless they are the default.
package service
