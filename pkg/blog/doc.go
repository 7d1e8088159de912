// Package blog loads markdown posts with YAML front matter and serves them
// from an in-memory store.
//
// A post file looks like this:
//
//	---
//	title: How to Resign Gracefully
//	description: Leaving on good terms.
//	date: 2025-01-15
//	author: Resignly Team
//	category: Career Advice
//	tags: [resignation, etiquette]
//	featured: true
//	---
//	Body in markdown.
//
// Missing fields fall back to defaults: the title "Untitled", the author
// "Anonymous", the category "General" and the load time as date. The slug is
// the file name without its extension unless the front matter sets one.
//
// The Store is read from a content.Source and can be reloaded at any time.
// Readers always see either the old or the new set of posts. A Refresher
// reloads the store on a cron schedule. Rendered HTML is produced by goldmark,
// sanitized with the article policy of the sanitizer package and cached.
package blog
