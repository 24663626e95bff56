package catalog

import "github.com/mrlokans/bookcatalog/internal/entities"

// TitleGroup is the set of author IDs that share one title in the join rows.
type TitleGroup struct {
	Title     string
	AuthorIDs map[int]struct{}
}

// Contains reports exact membership; author 1 never matches author 12.
func (tg TitleGroup) Contains(authorID int) bool {
	_, ok := tg.AuthorIDs[authorID]
	return ok
}

// GroupByTitle collects join rows into one group per distinct title, in the
// order titles first appear.
func GroupByTitle(rows []entities.RelationshipRow) []TitleGroup {
	index := make(map[string]int)
	var groups []TitleGroup
	for _, row := range rows {
		i, ok := index[row.Title]
		if !ok {
			i = len(groups)
			index[row.Title] = i
			groups = append(groups, TitleGroup{Title: row.Title, AuthorIDs: make(map[int]struct{})})
		}
		groups[i].AuthorIDs[row.AuthorID] = struct{}{}
	}
	return groups
}

// Link associates every book carrying a grouped title with every loaded
// author whose ID is in that title's group. Rows naming a title or author
// that is not in g are ignored. It returns the number of new associations,
// so a second call with the same rows returns 0.
func Link(g *Graph, rows []entities.RelationshipRow) int {
	added := 0
	for _, group := range GroupByTitle(rows) {
		for _, book := range g.BooksByTitle(group.Title) {
			for _, author := range g.authors {
				if group.Contains(author.AuthorID) && g.Link(book.ISBN, author.AuthorID) {
					added++
				}
			}
		}
	}
	return added
}
