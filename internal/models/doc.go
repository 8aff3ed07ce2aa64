// Package models defines the core records kept by the ledger.
//
// # Records
//
//   - Member: a person's registration data, keyed by UserID
//   - Payment: one payment transaction, tied to a member by UserID
//   - JoinedRow: a member and one of their payments, produced by the inner join
//
// # Design Principles
//
//  1. **Plain values**: records are small structs of strings (plus the payment
//     amount), copied freely; stores hand out copies, never pointers into
//     their tables.
//  2. **IDs as strings**: relationships use id strings, never pointers. A
//     payment keeps its UserID even after the member is deleted.
//  3. **ISO dates as text**: dates are stored as YYYY-MM-DD strings, which
//     sort chronologically when compared lexicographically.
package models
