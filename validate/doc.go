// Package validate runs the full acceptance gate over levels and catalogs.
//
// A level is valid when, in this order:
//
//  1. its structure passes level.Level.Validate;
//  2. it has exactly 0 or 2 odd-degree nodes;
//  3. its edges form one connected component;
//  4. a constructive search finds a complete walk;
//  5. no edge passes through a third node.
//
// Check never fails with an error; the verdict lives in the Report, whose
// Err field wraps one of the sentinels below.
//
// Errors:
//
//	ErrOddDegree    - odd-degree count is neither 0 nor 2.
//	ErrDisconnected - more than one component.
//	ErrUnsolvable   - the search found no complete walk.
//	ErrOverlap      - an edge passes through a node.
//	level.Err*      - structural problems, wrapped as reported by Validate.
package validate
