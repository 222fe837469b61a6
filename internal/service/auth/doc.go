// Package auth issues and verifies bearer tokens, hashes passwords with
// argon2id, and decides whether a token bearer is an administrator.
package auth
