package entities

// Book is a row of the titles table. Authors are not stored on the struct;
// the in-memory association lives in catalog.Graph keyed by ISBN.
type Book struct {
	ISBN          string `gorm:"column:isbn;primaryKey;size:10" json:"isbn" yaml:"isbn"`
	Title         string `gorm:"column:title;size:512" json:"title" yaml:"title"`
	EditionNumber int    `gorm:"column:editionNumber" json:"edition_number" yaml:"edition"`
	Copyright     string `gorm:"column:copyright;size:16" json:"copyright" yaml:"copyright"`
}

// Author is a row of the authors table. AuthorID is caller supplied.
type Author struct {
	AuthorID  int    `gorm:"column:authorID;primaryKey;autoIncrement:false" json:"author_id" yaml:"id"`
	FirstName string `gorm:"column:firstName;size:128" json:"first_name" yaml:"first_name"`
	LastName  string `gorm:"column:lastName;size:128" json:"last_name" yaml:"last_name"`
}

// FullName joins first and last name the way listings print them.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// AuthorISBN is one row of the join table.
type AuthorISBN struct {
	AuthorID int    `gorm:"column:authorID" json:"author_id"`
	ISBN     string `gorm:"column:isbn;size:10" json:"isbn"`
}

// RelationshipRow is one result row of titles ⋈ authorisbn ⋈ authors.
type RelationshipRow struct {
	Title    string `gorm:"column:title"`
	AuthorID int    `gorm:"column:authorID"`
}

func (Book) TableName() string {
	return "titles"
}

func (Author) TableName() string {
	return "authors"
}

func (AuthorISBN) TableName() string {
	return "authorisbn"
}
