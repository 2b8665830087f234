// Package models defines the core domain models for the house points tracker.
//
// # Collections
//
// Four independent collections make up the persisted state:
//   - User: staff accounts allowed to log points and manage the system
//   - House: competing teams accumulating signed point totals
//   - Category: quick-action templates that pre-fill a point event
//   - PointEvent: the append-only log of awards and penalties
//
// # Design Principles
//
//  1. **Ids over pointers**: events reference houses by id; the reference is
//     never enforced, so history survives house deletion
//  2. **No cascades**: deleting a user, house or category never touches events
//  3. **Closed roles**: Role is a fixed enumeration; access policies are built
//     from it, never from free strings
//
// JSON field names match the persisted blob format so existing data keeps
// loading across versions.
package models
