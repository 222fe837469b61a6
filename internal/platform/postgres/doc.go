// Package postgres provides PostgreSQL implementations of the store
// interfaces using database/sql over the pgx stdlib driver. It maps pg error
// codes and named constraints onto the store package's sentinel errors.
package postgres
