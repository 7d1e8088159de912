// Package content reads markdown documents from a directory of an fs.FS or
// from an S3-compatible bucket.
//
// Both sources implement Source and return the documents sorted by name:
//
//	src := content.NewFS(embedded, "blog")
//	files, err := src.Files(ctx)
//
// The S3 source lists every .md object under its prefix. When the prefix
// holds an index.yaml, only the documents it names are read:
//
//	posts:
//	  - first-post.md
//	  - second-post.md
package content
