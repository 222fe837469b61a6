// Package imagestore stores the photos attached to animals, sections, events and users.
//
// Uploads are limited in size and restricted to .jpg, .jpeg and .png files. Both
// checks run before anything is written. Stored files get a random UUID name that
// keeps the original extension. Two backends exist: LocalStore writes to the
// filesystem and S3Store writes to an S3-compatible bucket through aws-sdk-go-v2.
package imagestore
