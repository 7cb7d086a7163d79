// Package urn answers "draw from a bag" questions exactly, on top of the
// probability package.
//
// A Bag holds labelled items (two red balls, one white ball, …). Each physical
// item gets its own identity, so the bag becomes a uniform space over item ids
// plus a random variable from item id to label. Questions are asked in terms
// of labels and pulled back to item ids before they are measured.
//
// What:
//
//   - New(name, items...)      build a bag in code
//   - Load(r), LoadFile(path)  decode a bag from YAML
//   - (*Bag).Draw(n, mode)     the space/variable pair for n draws
//   - (*Draw).Probability(ev)  any label event: product, level set, sequence set
//   - (*Bag).SequenceProbability(labels, mode)  exact ordered outcome
//   - (*Bag).CountProbability(counts, mode)     exact multiset of labels
//
// YAML format:
//
//	name: letters
//	items:
//	  - label: a
//	    count: 3
//	  - label: b
//	    count: 1
//
// Complexity:
//
//   - WithReplacement level sets use the multinomial closed form: O(labels).
//   - WithoutReplacement level sets enumerate every item sequence with the
//     requested labels, which grows combinatorially with n and the bag size.
//
// Errors:
//
//   - ErrEmptyBag, ErrEmptyLabel, ErrBadCount, ErrDuplicateLabel  invalid bag contents
//   - ErrUnknownMode   Mode outside WithReplacement/WithoutReplacement
//   - ErrDecode        malformed YAML document
//   - probability.ErrTooManySamples  more draws than items without replacement
package urn
