// Package services holds the application logic between the REST transport
// and the repositories: input validation, transactions spanning several
// repositories, password hashing and token issuance.
package services
