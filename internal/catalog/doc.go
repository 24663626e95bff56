// Package catalog owns the in-memory book/author catalog.
//
// Books and authors are kept in flat slices (see Graph); the many-to-many
// relationship between them is a pair of key sets, ISBN to author IDs and
// author ID to ISBNs, so no Book ever holds a pointer to an Author or back.
//
// Service loads all three tables through a Gateway, rebuilds the
// association with Link, and exposes the list/add operations used by the
// interactive shell and the CLI commands.
//
// # Usage
//
//	svc := catalog.NewService(repo, auditService)
//	if err := svc.Load(ctx); err != nil { ... }
//	res := svc.AddAuthor(ctx, entities.Author{AuthorID: 7, FirstName: "Jane", LastName: "Doe"})
//	fmt.Println(res.Message)
package catalog
