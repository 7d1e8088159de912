// Package slug turns titles into URL path segments.
//
// Blog posts are addressed by slug. A post either names its slug in front
// matter or gets one derived from its file name or title:
//
//	slug.Make("Café & Résumé Tips")                  // "cafe-resume-tips"
//	slug.Make("How to Resign Gracefully", slug.MaxLength(12)) // "how-to-resig"
//	slug.Make("Two Weeks Notice", slug.Separator("_"))        // "two_weeks_notice"
//
// Common Latin diacritics fold to ASCII. Any other rune that is not an ASCII
// letter or digit becomes a separator, runs of separators collapse, and
// leading or trailing separators are dropped.
package slug
