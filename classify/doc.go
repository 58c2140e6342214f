// Package classify implements the text heuristics that label extracted
// tables: table classification, measurement-unit detection, reporting-period
// extraction, and confidence scoring.
//
// All heuristics are pure functions of their text input: the same table and
// context always produce the same labels.
//
// # Rulesets
//
// Classification and unit detection walk an ordered list of (label,
// keyword-set) rules; the first rule with any case-insensitive substring
// match wins, so more specific rules must precede generic ones. The built-in
// rules target Indian financial-disclosure documents (REIT/InvIT quarterly
// reports). [Load] reads replacement rules from a TOML file for other
// document families.
//
// # Confidence
//
// [Score] estimates extraction quality from grid shape: row count, column
// count regularity, and numeric density. [Fuse] averages that heuristic with
// a detector-reported accuracy percentage when one is available.
package classify
