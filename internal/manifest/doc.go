// Package manifest builds the media manifest: the ordered list of image
// entries found under a root directory.
//
// # Walk
//
// The root is walked with filepath.WalkDir, so entries come out in lexical
// order and repeated runs over the same tree give the same manifest. Every
// non-directory whose lowercased name ends with an allowed extension becomes
// an entry:
//
//	images/products/a.PNG  -> {path: "images/products/a.PNG", name: "a.PNG", type: "product"}
//	images/community/b.gif -> {path: "images/community/b.gif", name: "b.gif", type: "community"}
//	images/misc/d.txt      -> skipped
//
// # Usage
//
//	builder := manifest.NewBuilder(manifest.BuilderOptions{})
//	m, err := builder.Build(ctx, "images")
//	if domain.IsRootNotFound(err) {
//	    // nothing to do
//	}
//
// # Error Handling
//
// A missing root returns an error matching domain.ErrRootNotFound. Any other
// filesystem fault stops the walk and is returned as *domain.ScanError.
package manifest
