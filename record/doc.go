// SPDX-License-Identifier: MIT
// Package record implements the Data capability set for record and enum-like
// types from a declarative field-policy table.
//
// Each Field states whether its value is offered as a scalar of the record
// (AsValue), exposed as a link keyed by the field name (AsLink) or both, and
// whether the value is lent as is (Ref) or cloned on every offer (Clone).
// Skipped fields and fields with a nil Value (absent optionals) take no part.
//
//	r := record.New("Config",
//		record.Both("key", core.Str("abc")),
//		record.Val("optional", core.Bool(true)),
//	)
//
// offers the scalars "abc" and true, and one link "key" -> "abc".
//
// Record answers keyed queries itself (query.Linker), so a lookup by exact
// field name does not scan the other fields.
package record
