// SPDX-License-Identifier: MIT
// Package core defines the introspection protocol: the Data capability set,
// the type-directed Value Channel and the Link-Graph Protocol.
//
// A Data value exposes three things without committing to any output format:
//
//   - scalar values, offered through a Request to a Receiver (ProvideValue);
//   - outgoing links, optionally keyed, pushed into a Links sink (ProvideLinks);
//   - optionally, a stable identity (the Identifiable capability).
//
// Value Channel:
//
//	A Receiver declares up front, through Accepts, the Set of Kinds it wants.
//	A producer offers scalars through the Request handle; each offer is a single
//	bit test against that set and is dropped silently when the kind is not wanted.
//	Accepted values reach the receiver's typed callback (Bool, U32, Str, …);
//	anything outside the closed primitive set travels through Other.
//
//	Byte slices and Other values are offered in reference mode (lent for the
//	duration of the call) or owned mode (handed over). Receivers copy borrowed
//	values they want to keep. An owned value must not be offered twice.
//
//	Erase turns a typed Receiver into the single-entry Erased form used across
//	boundaries where the concrete receiver is unknown; FromErased goes back.
//	Request.ProvideData hands a whole value over atomically.
//
// Link-Graph Protocol:
//
//	Links.Push appends one (target, optional key) link and returns Continue or
//	Break, so bounded sinks (First, Limit) stop traversal early without errors.
//	Producers MUST stop pushing once Break is returned. Builder is the
//	step-wise producer side: SetKey → SetTarget → Build, repeated, then End.
//
// Adaptors fold links into common containers: Pairs, KeyedPairs, List, First,
// FirstKeyed, IDMap, IDSet, TextMap, Count and Limit.
//
// Errors:
//
//	ErrMissingTarget     - a link was finalized without a target.
//	ErrAlreadyEnded      - a builder session was driven after End.
//	ErrPendingLink       - End was called with an unfinished link.
//	ErrKeyAlreadySet     - SetKey was called twice for one link.
//	ErrTargetAlreadySet  - SetTarget was called twice for one link.
//	ErrUnsupportedQuery  - a value cannot honor a structural query.
//	ErrOther             - matched by OtherError, the escape hatch for arbitrary failures.
//
// "Type not requested" and "link skipped" are never errors.
//
// Everything in this package is synchronous: handles are borrowed for the
// duration of one call and must not be retained.
package core
