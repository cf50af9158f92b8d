// Package labelset provides small immutable sets of string labels backed by
// bit sets.
//
// 🚀 What is labelset?
//
//	An Interner assigns every distinct label a bit position the first time
//	it is seen. A Set is a bit set over those positions, so membership,
//	union and disjointness are word operations, and a Set's Key can stand in
//	for the set as a map key (memoization of search states, for example).
//
// ✨ Key features:
//   - Explicit ownership: the label table lives in an *Interner value, not
//     in process-wide state; Sets from different Interners must not mix.
//   - Immutable: Add, Delete and Union return new Sets.
//   - Labels: members as a sequence, in interning order.
//
// ⚙️ Usage:
//
//	in := labelset.NewInterner()
//	open := in.Empty().Add("AA").Add("BB")
//	fmt.Println(open)        // AA,BB
//	fmt.Println(open.Size()) // 2
package labelset
