// Command generate_demo creates a demo database with a sample book catalog.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/yomu/bookshelf/internal/database"
	"github.com/yomu/bookshelf/internal/database/books"
	"github.com/yomu/bookshelf/internal/database/categories"
	"github.com/yomu/bookshelf/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	// Create database at demo path; categories are seeded on open
	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	categoryIDs, err := categoryIDsByName(db)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}

	booksRepo := books.NewRepository(db.DB)
	for _, book := range sampleBooks(categoryIDs) {
		if err := booksRepo.CreateBook(&book); err != nil {
			log.Printf("Failed to save book %s: %v", *book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", *book.Title, *book.Author)
	}

	log.Println("Demo database generated successfully!")
}

func categoryIDsByName(db *database.Database) (map[string]*uint, error) {
	repo := categories.NewRepository(db.DB)
	all, err := repo.GetAllCategories()
	if err != nil {
		return nil, err
	}

	ids := make(map[string]*uint, len(all))
	for _, category := range all {
		id := category.ID
		ids[category.Name] = &id
	}
	return ids, nil
}

func str(v string) *string {
	return &v
}

func sampleBooks(category map[string]*uint) []entities.Book {
	return []entities.Book{
		{
			Title:         str("Norwegian Wood"),
			Hepburn:       str("Noruwei no Mori"),
			Author:        str("Haruki Murakami"),
			PublishedDate: str("1987-09-04"),
			Release:       str("1987"),
			URL:           str("https://en.wikipedia.org/wiki/Norwegian_Wood_(novel)"),
			Summary:       str("A nostalgic story of loss told through Toru Watanabe's memories of his student days in Tokyo."),
			CategoryID:    category["Fiction"],
		},
		{
			Title:         str("Kafka on the Shore"),
			Hepburn:       str("Umibe no Kafuka"),
			Author:        str("Haruki Murakami"),
			PublishedDate: str("2002-09-12"),
			Release:       str("2002"),
			URL:           str("https://en.wikipedia.org/wiki/Kafka_on_the_Shore"),
			Summary:       str("Two interwoven odysseys: a runaway teenager and an aging man who can talk to cats."),
			CategoryID:    category["Fiction"],
		},
		{
			Title:         str("Snow Country"),
			Hepburn:       str("Yukiguni"),
			Author:        str("Yasunari Kawabata"),
			PublishedDate: str("1947"),
			Release:       str("1947"),
			URL:           str("https://en.wikipedia.org/wiki/Snow_Country"),
			Summary:       str("A spare tale of a doomed love affair at a remote hot-spring town in the western mountains."),
			CategoryID:    category["Fiction"],
		},
		{
			Title:         str("I Am a Cat"),
			Hepburn:       str("Wagahai wa Neko de Aru"),
			Author:        str("Natsume Soseki"),
			PublishedDate: str("1906"),
			Release:       str("1906"),
			URL:           str("https://en.wikipedia.org/wiki/I_Am_a_Cat"),
			Summary:       str("A satirical portrait of Meiji-era intellectuals, narrated by a nameless housecat."),
			CategoryID:    category["Fiction"],
		},
		{
			Title:         str("The Book of Tea"),
			Hepburn:       str("Cha no Hon"),
			Author:        str("Kakuzo Okakura"),
			PublishedDate: str("1906"),
			Release:       str("1906"),
			URL:           str("https://en.wikipedia.org/wiki/The_Book_of_Tea"),
			Summary:       str("An essay on how teaism shaped Japanese aesthetics, written for a Western audience."),
			CategoryID:    category["Non-fiction"],
		},
		{
			Title:         str("Battle Royale"),
			Hepburn:       str("Batoru Rowaiaru"),
			Author:        str("Koushun Takami"),
			PublishedDate: str("1999-04-22"),
			Release:       str("1999"),
			URL:           str("https://en.wikipedia.org/wiki/Battle_Royale_(novel)"),
			Summary:       str("A class of junior-high students is forced by a totalitarian state to fight to the last survivor."),
			CategoryID:    category["Science Fiction"],
		},
		{
			Title:         str("The Left Hand of Darkness"),
			Author:        str("Ursula K. Le Guin"),
			PublishedDate: str("1969-03-01"),
			Release:       str("1969"),
			URL:           str("https://en.wikipedia.org/wiki/The_Left_Hand_of_Darkness"),
			Summary:       str("An envoy to the planet Gethen navigates politics on a world without fixed gender."),
			CategoryID:    category["Science Fiction"],
		},
		{
			Title:         str("The Name of the Rose"),
			Author:        str("Umberto Eco"),
			PublishedDate: str("1980"),
			Release:       str("1980"),
			URL:           str("https://en.wikipedia.org/wiki/The_Name_of_the_Rose"),
			Summary:       str("A Franciscan friar investigates a series of deaths at a Benedictine abbey in 1327."),
			CategoryID:    category["Mystery"],
		},
		{
			// No category on purpose: exercises the NULL category rendering
			Title:         str("Notes on Bookbinding"),
			Author:        str("Anonymous"),
			PublishedDate: str("1931"),
			Summary:       str("A pamphlet of workshop notes on hand bookbinding, author unknown."),
		},
	}
}
