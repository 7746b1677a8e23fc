// Package teller provides the core of a small password-gated account vault.
// It is designed to be local-first and auditable: all accounts live in a
// single human-readable text file, and every balance change is recorded in
// an append-only, timestamped transaction log.
//
// The core functionalities include:
//   - Credential Handling: deriving and verifying passwords with a salted,
//     iterated key-derivation function (PBKDF2-HMAC-SHA-256) and
//     constant-time comparison of the derived keys.
//   - Account Management: one account per username, with a non-negative
//     balance mutated only by validated deposits and withdrawals.
//   - Data Persistence: encoding and decoding the account set to and from a
//     pipe-delimited, line-oriented text format that tolerates malformed
//     records without corrupting the rest of the file.
//
// This package serves as the foundational logic for the `tlr` command-line
// tool; all prompting, retry loops and currency display belong to the CLI,
// never to the core.
package teller
